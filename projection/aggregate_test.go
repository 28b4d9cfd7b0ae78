package projection

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"dinger/domain/ding"

	"github.com/stretchr/testify/require"
)

func exampleDings() (received, sent []ding.Ding) {
	received = []ding.Ding{{Sender: "B", Recipient: "A", Note: "hi", TimestampWritten: "1/1/2024 10:00:00 AM"}}
	sent = []ding.Ding{{Sender: "A", Recipient: "C", Note: "yo", TimestampWritten: "1/1/2024 09:00:00 AM"}}
	return received, sent
}

func TestAggregator_Example(t *testing.T) {
	req := require.New(t)
	received, sent := exampleDings()

	sorted := SortByTimestamp(Merge(received, sent))
	req.Equal([]ding.Ding{sent[0], received[0]}, sorted)

	groups := GroupByPartner(sorted, "A")
	req.Equal(map[string][]ding.Ding{
		"B": {received[0]},
		"C": {sent[0]},
	}, groups)
}

func TestMerge_KeepsEveryDing(t *testing.T) {
	req := require.New(t)
	self := ding.Ding{Sender: "A", Recipient: "A", Note: "memo"}
	received := []ding.Ding{self, {Sender: "B", Recipient: "A"}}
	sent := []ding.Ding{self}

	merged := Merge(received, sent)
	req.Len(merged, len(received)+len(sent))
	req.Empty(Merge(nil, nil))
}

func TestSortByTimestamp_NonDecreasing(t *testing.T) {
	req := require.New(t)
	rnd := rand.New(rand.NewSource(42))
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	var dings []ding.Ding
	for i := 0; i < 50; i++ {
		at := base.Add(time.Duration(rnd.Intn(10_000)) * time.Second)
		d := ding.Ding{Sender: "A", Recipient: "B", Note: fmt.Sprintf("n%d", i)}
		if i%2 == 0 {
			d.CreatedAt = at
		} else {
			d.TimestampWritten = at.In(time.Local).Format(ding.DisplayLayout)
		}
		dings = append(dings, d)
	}

	sorted := SortByTimestamp(dings)
	req.Len(sorted, len(dings))
	for i := 1; i < len(sorted); i++ {
		prev, _ := sorted[i-1].Instant()
		cur, _ := sorted[i].Instant()
		req.False(cur.Before(prev), "index %d out of order", i)
	}
}

func TestSortByTimestamp_StableAndUnparseableFirst(t *testing.T) {
	req := require.New(t)
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	first := ding.Ding{Note: "first", CreatedAt: at}
	second := ding.Ding{Note: "second", CreatedAt: at}
	broken := ding.Ding{Note: "broken", TimestampWritten: "soon"}

	input := []ding.Ding{first, second, broken}
	sorted := SortByTimestamp(input)

	req.Equal([]string{"broken", "first", "second"}, notes(sorted))
	req.Equal("first", input[0].Note, "input must not be reordered")
}

func TestGroupByPartner_EveryDingInExactlyOneBucket(t *testing.T) {
	req := require.New(t)
	local := "A"
	dings := []ding.Ding{
		{Sender: "A", Recipient: "B", Note: "1"},
		{Sender: "C", Recipient: "A", Note: "2"},
		{Sender: "B", Recipient: "A", Note: "3"},
		{Sender: "A", Recipient: "C", Note: "4"},
		{Sender: "A", Recipient: "A", Note: "5"},
	}

	groups := GroupByPartner(dings, local)

	total := 0
	for partner, bucket := range groups {
		for _, d := range bucket {
			req.Equal(partner, Partner(d, local))
		}
		total += len(bucket)
	}
	req.Equal(len(dings), total)
	req.Equal([]string{"1", "3"}, notes(groups["B"]))
	req.Equal([]string{"5"}, notes(groups["A"]))
}

func notes(dings []ding.Ding) []string {
	out := make([]string, 0, len(dings))
	for _, d := range dings {
		out = append(out, d.Note)
	}
	return out
}

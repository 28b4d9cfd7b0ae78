package sink

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"dinger/domain/ding"
	"dinger/projection"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

const notePreview = 40

// ConsoleSink prints the conversation list and the active conversation
// whenever the visible part of the state changes.
type ConsoleSink struct {
	mu   sync.Mutex
	out  io.Writer
	last string
}

func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

func (c *ConsoleSink) Consume(_ context.Context, state projection.State) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	signature := viewSignature(state)
	if signature == c.last {
		return nil
	}
	c.last = signature
	return c.render(state)
}

func (c *ConsoleSink) render(state projection.State) error {
	if state.Loading {
		_, err := fmt.Fprintln(c.out, color.Gray.Sprint("Loading..."))
		return err
	}

	partners := tablewriter.NewWriter(c.out)
	partners.SetHeader([]string{"", "Conversation", "Dings", "Last note"})
	configure(partners)
	for _, partner := range state.Partners() {
		conversation := state.Conversation(partner)
		marker := ""
		if partner == state.ActiveRecipient {
			marker = "*"
		}
		last := ""
		if len(conversation) > 0 {
			last = preview(conversation[len(conversation)-1].Note)
		}
		partners.Append([]string{marker, partner, fmt.Sprint(len(conversation)), last})
	}
	partners.Render()

	if state.ActiveRecipient != "" {
		if _, err := fmt.Fprintln(c.out, color.Cyan.Sprintf("\n%s", state.ActiveRecipient)); err != nil {
			return err
		}
		chat := tablewriter.NewWriter(c.out)
		chat.SetHeader([]string{"Time", "From", "Note"})
		configure(chat)
		for _, d := range state.Active() {
			chat.Append([]string{d.TimestampWritten, author(d, state.LocalDID), d.Note})
		}
		chat.Render()
	}

	if state.ErrorMessage != "" {
		_, err := fmt.Fprintln(c.out, color.Red.Sprint(state.ErrorMessage))
		return err
	}
	return nil
}

func configure(table *tablewriter.Table) {
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("\t")
}

func author(d ding.Ding, local string) string {
	if d.Sender == local {
		return "me"
	}
	return d.Sender
}

func preview(note string) string {
	runes := []rune(note)
	if len(runes) <= notePreview {
		return note
	}
	return string(runes[:notePreview-1]) + "…"
}

// viewSignature changes whenever something ConsoleSink prints changes.
func viewSignature(state projection.State) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%t|%s|%s|%d|", state.Loading, state.ActiveRecipient, state.ErrorMessage, len(state.Sorted))
	for _, partner := range state.Partners() {
		fmt.Fprintf(&b, "%s:%d,", partner, len(state.Conversation(partner)))
	}
	return b.String()
}

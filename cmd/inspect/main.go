package main

import (
	"flag"
	"fmt"
	"os"

	"dinger/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	prefix := flag.String("prefix", "rec:", "Prefix to scan")
	flag.Parse()

	if err := inspect(*dbPath, *prefix); err != nil {
		fmt.Fprintf(os.Stderr, "inspect: %v\n", err)
		os.Exit(1)
	}
}

func inspect(path, prefix string) error {
	db, err := badger.Open(badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return fmt.Errorf("opening badger: %w", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Type", "Tenant", "Timestamp", "Entity ID", "Detail"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	count := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				info := repositories.DescribeKey(string(item.Key()), v)
				table.Append([]string{info.Type, info.Tenant, info.Timestamp, info.EntityID, info.Detail})
				count++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	table.Render()
	fmt.Printf("\n%d entries under %q\n", count, prefix)
	return nil
}

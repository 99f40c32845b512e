// Package output provides utilities for formatting and displaying
// calculation results.
package output

import (
	"fmt"

	"github.com/iwvelando/mortgage-math/internal/report"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(reports []report.Report) {
	p := message.NewPrinter(language.English)
	for i, result := range reports {
		fmt.Printf("--- %s ---\n", result.Name)
		for _, line := range result.Lines {
			_, _ = p.Printf("%s: $%.2f\n", line.Label, line.Amount)
		}
		if len(result.Schedule) > 0 {
			fmt.Printf("\nPeriod | Payment    | Principal  | Interest   | Balance\n")
			fmt.Printf("______ | __________ | __________ | __________ | __________\n")
			for _, row := range result.Schedule {
				_, _ = p.Printf("%6d | $%.2f | $%.2f | $%.2f | $%.2f\n",
					row.Period, row.Payment, row.Principal, row.Interest, row.RemainingBalance)
			}
		}
		if i < len(reports)-1 {
			fmt.Printf("\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(reports []report.Report) {
	for _, result := range reports {
		fmt.Printf(`"calculator","label","amount"`)
		fmt.Printf("\n")
		for _, line := range result.Lines {
			fmt.Printf(`"%s","%s","%.2f"`, result.Name, line.Label, line.Amount)
			fmt.Printf("\n")
		}
		if len(result.Schedule) > 0 {
			fmt.Printf(`"period","payment","principal","interest","balance"`)
			fmt.Printf("\n")
			for _, row := range result.Schedule {
				fmt.Printf(`"%d","%.2f","%.2f","%.2f","%.2f"`,
					row.Period, row.Payment, row.Principal, row.Interest, row.RemainingBalance)
				fmt.Printf("\n")
			}
		}
	}
}

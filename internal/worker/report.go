package worker

import (
	"fmt"
	"sync"

	"github.com/fatih/color"

	"github.com/tyrantkhan/tcx-pause-remover/internal/tcx"
)

// reportMu keeps report blocks from interleaving when several files are
// processed concurrently.
var reportMu sync.Mutex

func printAlreadyClean(input string) {
	reportMu.Lock()
	defer reportMu.Unlock()

	color.Set(color.FgYellow)
	fmt.Print("input: ")
	color.Set(color.FgGreen)
	fmt.Printf("%s\n", input)
	color.Unset()
	fmt.Println("No gaps detected - file already clean")
}

func printGapReport(input string, gaps []tcx.Gap) {
	reportMu.Lock()
	defer reportMu.Unlock()

	color.Set(color.FgYellow)
	fmt.Print("input: ")
	color.Set(color.FgGreen)
	fmt.Printf("%s\n", input)
	color.Unset()

	fmt.Printf("\nFound %d pause(s):\n", len(gaps))
	for i, gap := range gaps {
		fmt.Printf("  %d. %s to %s (%s)\n", i+1,
			gap.Start.UTC().Format("15:04:05"),
			gap.End.UTC().Format("15:04:05"),
			gap.DurationString())
	}
	fmt.Printf("\nTotal pause time: %s\n", tcx.HumanDuration(totalGapSeconds(gaps)))
}

func printDryRun() {
	reportMu.Lock()
	defer reportMu.Unlock()

	fmt.Println("\nDry run mode - no files modified")
}

func printRunSummary(outputPath string, newDuration, removed float64) {
	reportMu.Lock()
	defer reportMu.Unlock()

	fmt.Print("\nProcessed TCX written to: ")
	color.Set(color.FgMagenta)
	fmt.Printf("%s\n", outputPath)
	color.Unset()
	fmt.Printf("  New duration: %s\n", tcx.HumanDuration(newDuration))
	fmt.Printf("  Removed: %s\n", tcx.HumanDuration(removed))
}

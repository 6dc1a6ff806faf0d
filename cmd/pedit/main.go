package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pieceedit/piecetable"
)

var (
	pathFlag   = flag.String("path", "", "The file to open (empty for a new, unsaved document)")
	insertFlag = flag.String("insert", "", "Text to insert at -pos")
	posFlag    = flag.Uint64("pos", 0, "Byte offset for -insert")
	saveFlag   = flag.String("save", "", "Path to save the result to, if set")
)

func main() {
	flag.Parse()

	ed, err := piecetable.Open(*pathFlag)
	if err != nil {
		fmt.Printf("Error opening %q: %s\n", *pathFlag, err)
		os.Exit(1)
	}
	defer ed.Close()

	fmt.Printf("Loaded %q: %d bytes\n", *pathFlag, ed.Size())

	if *insertFlag != "" {
		if err := ed.Insert(*posFlag, *insertFlag); err != nil {
			fmt.Printf("Error inserting at %d: %s\n", *posFlag, err)
			os.Exit(1)
		}
		ed.Snapshot()
		fmt.Printf("Inserted %d bytes at %d, document is now %d bytes\n", len(*insertFlag), *posFlag, ed.Size())
	}

	if *saveFlag != "" {
		if err := ed.Save(*saveFlag); err != nil {
			fmt.Printf("Error saving to %q: %s\n", *saveFlag, err)
			os.Exit(1)
		}
		fmt.Printf("Saved to %q\n", *saveFlag)
	}

	stats := ed.Stats()
	fmt.Printf("pieces=%d slabs=%d undo=%d redo=%d modified=%v\n",
		stats.Pieces, stats.Slabs, stats.UndoDepth, stats.RedoDepth, ed.Modified())
}

// Command anvilcat inspects and edits region files and gzip-framed NBT
// files from the command line. It is a thin wrapper over the nbt and
// region packages, not a game server.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/OCharnyshevich/anvilnbt/nbt"
	"github.com/OCharnyshevich/anvilnbt/region"
)

func main() {
	var (
		regionPath string
		filePath   string
		x          int
		z          int
		dump       bool
		setInt     string
	)
	flag.StringVar(&regionPath, "region", "", "path to a .mca region file")
	flag.StringVar(&filePath, "file", "", "path to a gzip-framed NBT file (e.g. level.dat)")
	flag.IntVar(&x, "x", 0, "chunk x within the region (0-31)")
	flag.IntVar(&z, "z", 0, "chunk z within the region (0-31)")
	flag.BoolVar(&dump, "dump", false, "print the selected document")
	flag.StringVar(&setInt, "set-int", "", "dotted.path=value: set an Int tag and write back")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	switch {
	case filePath != "":
		runFile(log, filePath, dump, setInt)
	case regionPath != "":
		runRegion(log, regionPath, x, z, dump, setInt)
	default:
		fmt.Fprintln(os.Stderr, "usage: anvilcat -file level.dat [-dump] [-set-int path=value]")
		fmt.Fprintln(os.Stderr, "       anvilcat -region r.0.0.mca -x 3 -z 4 [-dump] [-set-int path=value]")
		os.Exit(2)
	}
}

func runFile(log *slog.Logger, path string, dump bool, setInt string) {
	doc, err := nbt.ReadFile(path)
	if err != nil {
		log.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}

	if setInt != "" {
		if err := applySetInt(doc, setInt); err != nil {
			log.Error("set-int", "error", err)
			os.Exit(1)
		}
		if err := nbt.WriteFile(path, doc); err != nil {
			log.Error("write file", "path", path, "error", err)
			os.Exit(1)
		}
	}

	if dump || setInt == "" {
		if err := nbt.Print(doc.Root(), os.Stdout); err != nil {
			log.Error("print", "error", err)
			os.Exit(1)
		}
		fmt.Println()
	}
}

func runRegion(log *slog.Logger, path string, x, z int, dump bool, setInt string) {
	r, err := region.Open(path, setInt != "", region.WithLogger(log))
	if err != nil {
		log.Error("open region", "path", path, "error", err)
		os.Exit(1)
	}
	defer r.Close()

	if !r.ContainsChunk(x, z) {
		fmt.Fprintf(os.Stderr, "chunk (%d,%d) is not present in %s\n", x, z, path)
		os.Exit(1)
	}

	doc, err := r.ReadChunkDocument(x, z)
	if err != nil {
		log.Error("read chunk", "x", x, "z", z, "error", err)
		os.Exit(1)
	}

	if setInt != "" {
		if err := applySetInt(doc, setInt); err != nil {
			log.Error("set-int", "error", err)
			os.Exit(1)
		}
		if err := r.WriteChunkDocument(x, z, doc, r.CompressionKind(x, z)); err != nil {
			log.Error("write chunk", "x", x, "z", z, "error", err)
			os.Exit(1)
		}
		if err := r.Flush(); err != nil {
			log.Error("flush", "path", path, "error", err)
			os.Exit(1)
		}
	}

	if dump || setInt == "" {
		if err := nbt.Print(doc.Root(), os.Stdout); err != nil {
			log.Error("print", "error", err)
			os.Exit(1)
		}
		fmt.Println()
	}
}

// applySetInt walks a dotted Compound path (e.g. "Data.GameType") and
// sets the final tag's integer value, failing if any segment but the
// last is missing or the final tag isn't found.
func applySetInt(doc *nbt.Document, expr string) error {
	eq := strings.IndexByte(expr, '=')
	if eq < 0 {
		return fmt.Errorf("expected path=value, got %q", expr)
	}
	path, valStr := expr[:eq], expr[eq+1:]
	val, err := strconv.ParseInt(valStr, 10, 64)
	if err != nil {
		return fmt.Errorf("parse value %q: %w", valStr, err)
	}

	segments := strings.Split(path, ".")
	target := doc.Root().FindChain(segments...)
	if target == nil {
		return fmt.Errorf("path %q not found", path)
	}
	target.SetInt64(val)
	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"

	"vol/internal/device"
	"vol/internal/volume"
)

type levelsDoc struct {
	Device   string    `json:"device"`
	Master   float64   `json:"master"`
	Channels []float64 `json:"channels"`
}

type deviceDoc struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Default bool   `json:"default"`
	State   string `json:"state"`
}

// printLevels renders the master and per-channel levels. Two-channel
// endpoints get the compact balance form.
func printLevels(w io.Writer, info device.Info, snap volume.Snapshot, asJSON bool) error {
	if asJSON {
		doc := levelsDoc{Device: info.Name, Master: snap.Master, Channels: snap.Channels}
		enc := json.NewEncoder(w)
		return enc.Encode(doc)
	}

	fmt.Fprintf(w, "master: %.0f\n", snap.Master)
	if len(snap.Channels) == 2 {
		fmt.Fprintf(w, "balance: %.0f/%.0f\n", snap.Channels[0], snap.Channels[1])
		return nil
	}
	for i, level := range snap.Channels {
		fmt.Fprintf(w, "ch%d: %.0f\n", i, level)
	}
	return nil
}

// listDevices enumerates the available output endpoints sorted by friendly
// name: a table on a terminal, tab-separated lines otherwise.
func listDevices(w io.Writer, backend device.Backend, asJSON bool) error {
	infos, err := backend.List()
	if err != nil {
		return fmt.Errorf("list devices: %w", err)
	}
	device.SortByName(infos)

	if asJSON {
		docs := make([]deviceDoc, len(infos))
		for i, info := range infos {
			docs[i] = deviceDoc{ID: info.ID, Name: info.Name, Default: info.Default, State: info.State.String()}
		}
		enc := json.NewEncoder(w)
		return enc.Encode(docs)
	}

	if isTerminal(w) {
		tw := table.NewWriter()
		tw.SetStyle(table.StyleRounded)
		tw.AppendHeader(table.Row{"", "Name", "ID", "State"})
		for _, info := range infos {
			marker := ""
			if info.Default {
				marker = "*"
			}
			tw.AppendRow(table.Row{marker, info.Name, info.ID, info.State.String()})
		}
		fmt.Fprintln(w, tw.Render())
		return nil
	}

	for _, info := range infos {
		marker := ""
		if info.Default {
			marker = "default"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Name, info.ID, info.State, marker)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

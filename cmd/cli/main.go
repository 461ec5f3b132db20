package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/devansharora/tunedeck/pkg/logger"
	"github.com/devansharora/tunedeck/pkg/tunedeck"
)

var (
	asJSON         bool
	followSymlinks bool
)

var rootCmd = &cobra.Command{
	Use:   "tunedeck",
	Short: "TuneDeck backend command-line interface",
}

var scanCmd = &cobra.Command{
	Use:   "scan [folder]",
	Short: "Recursively scan a folder for audio files",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

var existsCmd = &cobra.Command{
	Use:   "exists [path]",
	Short: "Check whether a file path exists",
	Args:  cobra.ExactArgs(1),
	RunE:  runExists,
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the recognized audio file extensions",
	Args:  cobra.NoArgs,
	RunE:  runFormats,
}

func init() {
	scanCmd.Flags().BoolVar(&asJSON, "json", false, "Emit results as JSON")
	scanCmd.Flags().BoolVar(&followSymlinks, "follow-symlinks", true, "Follow symbolic links while scanning")
	rootCmd.AddCommand(scanCmd, existsCmd, formatsCmd)
}

func newService() tunedeck.Service {
	return tunedeck.NewService(
		tunedeck.WithFollowSymlinks(followSymlinks),
	)
}

func runScan(cmd *cobra.Command, args []string) error {
	folder := args[0]

	files, err := newService().ScanMusicFolder(folder)
	if err != nil {
		return err
	}

	if asJSON {
		return json.NewEncoder(os.Stdout).Encode(files)
	}

	rows := pterm.TableData{{"Name", "Extension", "Folder"}}
	var totalBytes uint64
	for _, f := range files {
		folderCol := ""
		if f.Folder != nil {
			folderCol = *f.Folder
		}
		rows = append(rows, []string{f.Name, f.Extension, folderCol})

		if st, err := os.Stat(f.Path); err == nil {
			totalBytes += uint64(st.Size())
		}
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		return err
	}

	pterm.Success.Printfln("%s music files (%s) under %s",
		humanize.Comma(int64(len(files))), humanize.Bytes(totalBytes), folder)
	return nil
}

func runExists(cmd *cobra.Command, args []string) error {
	path := args[0]

	if newService().FileExists(path) {
		pterm.Success.Printfln("%s exists", path)
		return nil
	}

	pterm.Warning.Printfln("%s does not exist", path)
	os.Exit(1)
	return nil
}

func runFormats(cmd *cobra.Command, args []string) error {
	items := make([]pterm.BulletListItem, 0)
	for _, ext := range tunedeck.SupportedExtensions() {
		items = append(items, pterm.BulletListItem{Level: 0, Text: ext})
	}
	return pterm.DefaultBulletList.WithItems(items).Render()
}

func main() {
	// Keep stdout clean for table and JSON output.
	logger.SetOutput(os.Stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/voltopo/voltopo/internal/output"
	"github.com/voltopo/voltopo/internal/probe"
)

var defragCmd = &cobra.Command{
	Use:   "defragment [options] <file>|<dir> [<file>|<dir>...]",
	Short: "Defragment files or directories",
	Long: `Defragment the given files. With -r, directories are walked and
every regular file underneath is defragmented; without it, a directory
argument defragments the directory's own metadata only.

Per-target failures are counted and reported at the end; they do not
stop the remaining targets from being processed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recursive, _ := cmd.Flags().GetBool("recursive")
		verbose, _ := cmd.Flags().GetBool("verbose")
		flush, _ := cmd.Flags().GetBool("flush")
		compress, _ := cmd.Flags().GetString("compress")
		startStr, _ := cmd.Flags().GetString("start")
		lenStr, _ := cmd.Flags().GetString("len")
		threshStr, _ := cmd.Flags().GetString("target-size")

		switch compress {
		case "", "zlib", "lzo":
		default:
			return fmt.Errorf("unknown compression type %q", compress)
		}

		req := probe.DefragRequest{Compress: compress, Flush: flush}
		var err error
		if startStr != "" {
			if req.Start, err = output.ParseSize(startStr); err != nil {
				return err
			}
		}
		if lenStr != "" {
			if req.Length, err = output.ParseSize(lenStr); err != nil {
				return err
			}
		}
		if threshStr != "" {
			if req.ExtentThresh, err = output.ParseSize(threshStr); err != nil {
				return err
			}
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		sys := newSystem(cfg)

		failures := 0
		defragOne := func(path string) {
			if verbose {
				cmd.Println(path)
			}
			r := req
			r.Path = path
			if err := sys.Defragment(cmd.Context(), r); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "defrag failed on %s: %v\n", path, err)
				failures++
			}
		}

		for _, target := range args {
			st, err := os.Stat(target)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "cannot open %s: %v\n", target, err)
				failures++
				continue
			}

			if recursive && st.IsDir() {
				walkErr := filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
					if err != nil {
						return err
					}
					if d.Type().IsRegular() {
						defragOne(path)
					}
					return nil
				})
				if walkErr != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "defrag failed on %s: %v\n", target, walkErr)
					failures++
				}
				continue
			}

			if !st.IsDir() && !st.Mode().IsRegular() {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s is not a directory or a regular file\n", target)
				failures++
				continue
			}
			defragOne(target)
		}

		if failures > 0 {
			return fmt.Errorf("total %d failures", failures)
		}
		return nil
	},
}

func init() {
	defragCmd.Flags().BoolP("recursive", "r", false, "defragment files recursively")
	defragCmd.Flags().BoolP("verbose", "v", false, "print each file before defragmenting")
	defragCmd.Flags().BoolP("flush", "f", false, "flush data to disk immediately after defragmenting")
	defragCmd.Flags().StringP("compress", "c", "", "compress the file while defragmenting (zlib or lzo)")
	defragCmd.Flags().StringP("start", "s", "", "defragment only from this byte onward")
	defragCmd.Flags().StringP("len", "l", "", "defragment only up to this many bytes")
	defragCmd.Flags().StringP("target-size", "t", "", "target extent size hint")
}

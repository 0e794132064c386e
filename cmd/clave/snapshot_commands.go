package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"americanclave/internal/source"
)

func newSnapshotCommand(ctx *commandContext) *cobra.Command {
	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage the local catalog mirror",
	}
	snapshotCmd.AddCommand(newSnapshotPullCommand(ctx))
	snapshotCmd.AddCommand(newSnapshotStatusCommand(ctx))
	return snapshotCmd
}

func newSnapshotPullCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Copy the worker catalog into the mirror database",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := ctx.worker()
			if err != nil {
				return err
			}
			db, err := ctx.mirrorDB()
			if err != nil {
				return err
			}
			snap, err := source.Pull(cmd.Context(), w)
			if err != nil {
				return err
			}
			if err := source.SaveSnapshot(cmd.Context(), db, snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Snapshot %s: %d albums, %d players\n", snap.ID, len(snap.Albums), len(snap.Players))
			return nil
		},
	}
}

func newSnapshotStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the latest mirror snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := ctx.mirrorDB()
			if err != nil {
				return err
			}
			info, err := source.LatestSnapshot(cmd.Context(), db)
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, info)
			}
			out := cmd.OutOrStdout()
			if info == nil {
				fmt.Fprintln(out, "Mirror is empty; run `clave snapshot pull`")
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Snapshot", "Source", "Albums", "Players", "Taken"},
				[][]string{{info.ID, info.Source, fmt.Sprint(info.Albums), fmt.Sprint(info.Players), info.TakenAt}},
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}
}

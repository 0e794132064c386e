package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"americanclave/internal/catalog"
	"americanclave/internal/groups"
	"americanclave/internal/slug"
	"americanclave/pkg/models"
)

func newSlugCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "slug <text>...",
		Short:       "Print the URL slug of each argument",
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				fmt.Fprintln(out, slug.ToSlug(arg))
			}
			return nil
		},
	}
}

func newAlbumsCommand(ctx *commandContext) *cobra.Command {
	var purchasable bool

	cmd := &cobra.Command{
		Use:   "albums",
		Short: "List catalog albums",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ctx.resolver()
			if err != nil {
				return err
			}
			albums, err := r.Albums(cmd.Context(), purchasable)
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, albums)
			}
			rows := make([][]string, 0, len(albums))
			for _, a := range albums {
				rows = append(rows, []string{
					idText(a.ID),
					a.Slug,
					a.Artist,
					a.Catno,
					a.CanonicalCatno,
					groupText(groups.GroupOf(catalog.AlbumEntry(a), groups.Table)),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Slug", "Artist", "Catno", "Canonical", "Group"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignRight},
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&purchasable, "purchasable", false, "Only albums available for purchase")
	return cmd
}

func newAlbumCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "album <id|slug>",
		Short: "Show one album with its tracklist and players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ctx.resolver()
			if err != nil {
				return err
			}
			d, err := r.AlbumDetail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if d == nil {
				return fmt.Errorf("album %q not found", args[0])
			}
			apps, err := r.AlbumPlayers(cmd.Context(), strconv.FormatInt(d.ID, 10))
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, struct {
					*models.AlbumDetail
					Players []models.PlayerAppearance `json:"players"`
				}{d, apps})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", d.Title)
			fmt.Fprintf(out, "  Artist:      %s\n", d.Artist)
			fmt.Fprintf(out, "  Catno:       %s (%s)\n", d.Catno, d.CanonicalCatno)
			fmt.Fprintf(out, "  Group:       %s\n", groupText(d.GroupID))
			fmt.Fprintf(out, "  Purchasable: %s\n", yesNo(d.AvailableForPurchase))
			if d.CoverURL != "" {
				fmt.Fprintf(out, "  Cover:       %s\n", d.CoverURL)
			}

			if len(d.Tracklist) > 0 {
				rows := make([][]string, 0, len(d.Tracklist))
				for _, t := range d.Tracklist {
					rows = append(rows, []string{strconv.Itoa(t.Position), t.Title, t.Duration})
				}
				fmt.Fprintln(out, renderTable([]string{"#", "Title", "Duration"}, rows,
					[]columnAlignment{alignRight, alignLeft, alignRight}))
			}
			if len(apps) > 0 {
				rows := make([][]string, 0, len(apps))
				for _, a := range apps {
					rows = append(rows, []string{a.Name, a.Role})
				}
				fmt.Fprintln(out, renderTable([]string{"Player", "Role"}, rows, nil))
			}
			return nil
		},
	}
}

func newGroupsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "Show albums partitioned into editorial groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ctx.resolver()
			if err != nil {
				return err
			}
			buckets, err := r.Groups(cmd.Context())
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, buckets)
			}
			rows := make([][]string, 0, len(buckets))
			for _, b := range buckets {
				titles := make([]string, 0, len(b.Items))
				for _, a := range b.Items {
					titles = append(titles, a.Title)
				}
				rows = append(rows, []string{strconv.Itoa(b.ID), b.Name, strconv.Itoa(len(b.Items)), strings.Join(titles, "\n")})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Group", "Albums", "Titles"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}
}

func newPlayersCommand(ctx *commandContext) *cobra.Command {
	var coreOnly bool
	var search string

	cmd := &cobra.Command{
		Use:   "players",
		Short: "List players, core players first",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ctx.resolver()
			if err != nil {
				return err
			}
			players, err := r.PlayerDirectory(cmd.Context(), search)
			if err != nil {
				return err
			}
			if coreOnly {
				kept := players[:0]
				for _, p := range players {
					if p.Core {
						kept = append(kept, p)
					}
				}
				players = kept
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, players)
			}
			rows := make([][]string, 0, len(players))
			for _, p := range players {
				rows = append(rows, []string{idText(p.ID), p.Name, p.Slug, yesNo(p.Core), p.Lifespan})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name", "Slug", "Core", "Lifespan"},
				rows,
				[]columnAlignment{alignRight},
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&coreOnly, "core", false, "Only players with full profile pages")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Only players whose name contains this text")
	return cmd
}

func newPlayerCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "player <slug>",
		Short: "Show one player and the albums they appear on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := ctx.resolver()
			if err != nil {
				return err
			}
			p, err := r.PlayerDetail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("player %q not found", args[0])
			}
			credits, err := r.PlayerAlbums(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, struct {
					*models.Player
					Albums []models.PlayerCredit `json:"albums"`
				}{p, credits})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", p.Name)
			if p.Lifespan != "" {
				fmt.Fprintf(out, "  %s\n", p.Lifespan)
			}
			if p.Picture != "" {
				fmt.Fprintf(out, "  Picture: %s\n", p.Picture)
			}
			if p.Bio != "" {
				fmt.Fprintf(out, "\n%s\n", p.Bio)
			}
			if len(credits) > 0 {
				rows := make([][]string, 0, len(credits))
				for _, c := range credits {
					rows = append(rows, []string{c.Title, c.Role, c.SongName})
				}
				fmt.Fprintln(out, renderTable([]string{"Album", "Role", "Song"}, rows, nil))
			}
			return nil
		},
	}
}

func idText(id int64) string {
	if id == 0 {
		return "-"
	}
	return strconv.FormatInt(id, 10)
}

func groupText(id int) string {
	if id == groups.UngroupedID {
		return groups.UngroupedName
	}
	return strconv.Itoa(id)
}

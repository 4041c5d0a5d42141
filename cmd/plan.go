package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jkasmommy/brainpod-sub000/internal/catalog"
	"github.com/jkasmommy/brainpod-sub000/internal/mastery"
	"github.com/jkasmommy/brainpod-sub000/internal/planner"
	"github.com/jkasmommy/brainpod-sub000/internal/store"
)

var planCmd = &cobra.Command{
	Use:   "plan <subject>",
	Short: "Show today's playlist for a subject",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, err := parseSubject(args[0])
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		data, err := latestSnapshotData(ctx, st)
		if err != nil {
			return err
		}

		items := planner.ItemsFromData(data.Plans[string(subject)])
		if len(items) == 0 {
			fmt.Printf("No plan for %s yet. Run `brainpod diag %s` first.\n", subject, subject)
			return nil
		}

		masterySvc := mastery.NewService(data, nil)
		playlist := planner.BuildDailyPlaylist(items, masterySvc.BySkill(subject), time.Now())
		if optimize, _ := cmd.Flags().GetBool("optimize"); optimize {
			playlist = planner.OptimizeSessionOrder(playlist)
		}

		if len(playlist) == 0 {
			fmt.Println("Nothing due today. Nice work!")
			return nil
		}

		fmt.Printf("%-28s  %-34s  %4s  %-6s  %s\n", "Lesson", "Title", "Mins", "Kind", "Skills")
		fmt.Println(strings.Repeat("─", 96))
		for _, item := range playlist {
			meta := catalog.FindOrDefault(item.LessonID)
			kind := "new"
			if item.IsReview() {
				kind = "review"
			}
			fmt.Printf("%-28s  %-34s  %4d  %-6s  %s\n",
				item.LessonID, truncate(meta.Title, 34), meta.Minutes, kind, strings.Join(item.Skills, ", "))
		}
		fmt.Printf("\n%d lessons due\n", len(playlist))
		return nil
	},
}

var planDoneCmd = &cobra.Command{
	Use:   "done <subject> <lesson-id>",
	Short: "Mark a lesson complete and update skill mastery",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, err := parseSubject(args[0])
		if err != nil {
			return err
		}
		lessonID := args[1]

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		data, err := latestSnapshotData(ctx, st)
		if err != nil {
			return err
		}
		events, err := st.EventRepo()
		if err != nil {
			return err
		}

		items := planner.ItemsFromData(data.Plans[string(subject)])
		idx := -1
		for i := range items {
			if items[i].LessonID == lessonID && items[i].Status != planner.StatusDone {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("no open plan item %q for %s", lessonID, subject)
		}

		now := time.Now()
		items[idx].MarkDone(now)

		missed, _ := cmd.Flags().GetBool("missed")
		masterySvc := mastery.NewService(data, events)
		for _, skill := range items[idx].Skills {
			r := masterySvc.RecordPractice(ctx, subject, skill, !missed, now)
			fmt.Printf("%s: theta %.1f (%s), next review in %d days\n",
				skill, r.Theta, r.Level, mastery.NextReviewInDays(r.Theta, !missed))
		}

		if data.Plans == nil {
			data.Plans = make(map[string][]*store.PlanItemData)
		}
		data.Plans[string(subject)] = planner.ItemsData(items)
		data.Mastery = masterySvc.SnapshotData()
		return saveSnapshotData(ctx, st, data)
	},
}

func init() {
	planCmd.Flags().Bool("optimize", false, "Interleave new lessons with reviews")
	planDoneCmd.Flags().Bool("missed", false, "Record the lesson's skills as missed")

	planCmd.AddCommand(planDoneCmd)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jkasmommy/brainpod-sub000/internal/itembank"
	"github.com/jkasmommy/brainpod-sub000/internal/mastery"
	"github.com/jkasmommy/brainpod-sub000/internal/placement"
	"github.com/jkasmommy/brainpod-sub000/internal/store"
)

// recentAccuracyWindow is how many recent answers feed the accuracy column.
const recentAccuracyWindow = 5

var statsCmd = &cobra.Command{
	Use:   "stats <subject>",
	Short: "Show placement and skill mastery for a subject",
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
		events, err := st.EventRepo()
		if err != nil {
			return err
		}

		if level := placement.LevelFromData(data.Levels[string(subject)]); level != nil {
			fmt.Printf("Placement: grade %s, unit %s (ability %.2f, confidence %s)\n\n",
				level.Grade, level.Unit, level.Ability, level.Confidence)
		} else {
			fmt.Printf("No placement yet. Run `brainpod diag %s`.\n\n", subject)
		}

		masterySvc := mastery.NewService(data, events)
		records := masterySvc.BySkill(subject)
		if len(records) == 0 {
			fmt.Println("No skills practiced yet.")
			return nil
		}

		skills := make([]string, 0, len(records))
		for id := range records {
			skills = append(skills, id)
		}
		sort.Strings(skills)

		now := time.Now()
		fmt.Printf("%-24s  %6s  %-11s  %8s  %-12s  %s\n", "Skill", "Theta", "Level", "Attempts", "Next Review", "Recent")
		fmt.Println(strings.Repeat("─", 84))
		for _, id := range skills {
			printSkillRow(ctx, subject, records[id], events, now)
		}
		return nil
	},
}

func printSkillRow(ctx context.Context, subject itembank.Subject, r *mastery.Record, events store.EventRepo, now time.Time) {
	next := "—"
	if !r.NextReviewAt.IsZero() {
		if r.Due(now) {
			next = "due now"
		} else {
			next = r.NextReviewAt.Format("2006-01-02")
		}
	}

	recent := "—"
	if accuracy, count, err := events.RecentAnswerAccuracy(ctx, string(subject), r.SkillID, recentAccuracyWindow); err == nil && count > 0 {
		recent = fmt.Sprintf("%.0f%% of %d", accuracy*100, count)
	}

	fmt.Printf("%-24s  %6.1f  %-11s  %8d  %-12s  %s\n",
		r.SkillID, r.Theta, r.Level, r.Attempts, next, recent)
}

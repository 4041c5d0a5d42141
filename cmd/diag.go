package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jkasmommy/brainpod-sub000/internal/diagnostic"
	"github.com/jkasmommy/brainpod-sub000/internal/itembank"
	"github.com/jkasmommy/brainpod-sub000/internal/placement"
	"github.com/jkasmommy/brainpod-sub000/internal/planner"
	"github.com/jkasmommy/brainpod-sub000/internal/store"
)

var diagCmd = &cobra.Command{
	Use:   "diag <subject>",
	Short: "Run an adaptive diagnostic and place the learner",
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

		bank, err := diagProvider(cmd, subject).LoadItemBank(subject)
		if err != nil {
			return err
		}

		bp := diagnostic.DefaultBlueprint(subject)
		var prior *diagnostic.SessionState
		if data.Sessions != nil {
			prior = diagnostic.StateFromData(data.Sessions[string(subject)])
		}
		sess, err := diagnostic.ResumeSession(bp, prior, bank, events)
		if err != nil {
			return err
		}

		in := bufio.NewScanner(os.Stdin)
		if prior == nil {
			askMood(in, sess.State())
		} else {
			fmt.Printf("Resuming %s diagnostic at question %d.\n", itembank.SubjectDisplayName(subject), sess.State().Attempts+1)
		}

		for {
			item := sess.Next()
			if item == nil {
				break
			}

			fmt.Printf("\nQ%d. %s\n", sess.State().Attempts+1, item.Prompt)
			for i, c := range item.Choices {
				fmt.Printf("  %d) %s\n", i+1, c)
			}
			fmt.Print("> ")
			if !in.Scan() {
				// Input ended mid-session: persist state for resume.
				return persistSession(cmd, st, data, subject, sess)
			}

			correct, err := sess.Submit(ctx, in.Text())
			if err != nil {
				return err
			}
			if correct {
				fmt.Println("Correct!")
			} else {
				fmt.Println("Not quite.")
			}

			if sess.State().NeedsBreak {
				fmt.Println("\nTime for a mindful break — stretch, breathe, sip some water. Press Enter to continue.")
				in.Scan()
				diagnostic.DismissBreak(sess.State())
			}

			if err := persistSession(cmd, st, data, subject, sess); err != nil {
				return err
			}
		}

		return finishDiagnostic(cmd, st, data, subject, sess, events)
	},
}

func init() {
	diagCmd.Flags().String("bank", "", "Path to an item bank JSON file (default: built-in bank)")
}

// diagProvider picks the item bank provider from flags.
func diagProvider(cmd *cobra.Command, subject itembank.Subject) itembank.Provider {
	if path, _ := cmd.Flags().GetString("bank"); path != "" {
		return &itembank.FileProvider{Paths: map[itembank.Subject]string{subject: path}}
	}
	return itembank.SeedProvider{}
}

// askMood records a self-reported mood before the first question.
func askMood(in *bufio.Scanner, state *diagnostic.SessionState) {
	fmt.Print("How are you feeling today, 1 (rough) to 5 (great)? ")
	if !in.Scan() {
		return
	}
	if mood, err := strconv.Atoi(strings.TrimSpace(in.Text())); err == nil {
		state.SetMood(mood)
	}
}

// persistSession saves the in-flight session so it can be resumed.
func persistSession(cmd *cobra.Command, st *store.Store, data *store.SnapshotData, subject itembank.Subject, sess *diagnostic.Session) error {
	if data.Sessions == nil {
		data.Sessions = make(map[string]*store.SessionStateData)
	}
	data.Sessions[string(subject)] = sess.State().Data()
	return saveSnapshotData(cmd.Context(), st, data)
}

// finishDiagnostic routes the terminal ability through the placement
// mapper, seeds the learning plan, and drops the transient session.
func finishDiagnostic(cmd *cobra.Command, st *store.Store, data *store.SnapshotData, subject itembank.Subject, sess *diagnostic.Session, events store.EventRepo) error {
	ctx := cmd.Context()
	state := sess.State()

	p := placement.Place(state.Ability, subject)
	level := placement.DeriveLevel(p, state.Attempts, state.DistinctSkills())

	pd := p.Data()
	pd.CompletedAt = time.Now().Format(time.RFC3339)
	pd.Attempts = diagnostic.AttemptsData(sess.AttemptLog())

	if data.Placements == nil {
		data.Placements = make(map[string]*store.PlacementData)
	}
	if data.Levels == nil {
		data.Levels = make(map[string]*store.LevelRecordData)
	}
	data.Placements[string(subject)] = pd
	data.Levels[string(subject)] = level.Data()
	delete(data.Sessions, string(subject))

	// Seed the learning plan once per subject; re-running a diagnostic
	// never clobbers an existing plan.
	if data.Plans == nil {
		data.Plans = make(map[string][]*store.PlanItemData)
	}
	if len(data.Plans[string(subject)]) == 0 {
		items := planner.SeedPlan(level, time.Now())
		data.Plans[string(subject)] = planner.ItemsData(items)
	}

	if err := saveSnapshotData(ctx, st, data); err != nil {
		return err
	}
	if events != nil {
		_ = events.AppendPlacementEvent(ctx, store.PlacementEventData{
			Subject:       string(subject),
			Ability:       p.Ability,
			StandardError: p.StandardError,
			Label:         p.Label,
			Grade:         p.RecommendedGrade,
			Unit:          p.RecommendedUnit,
			Attempts:      state.Attempts,
		})
	}

	fmt.Printf("\nDiagnostic complete after %d questions (%d correct).\n", state.Attempts, state.CorrectCount)
	if sess.Exhausted() {
		fmt.Println("(The item bank ran out of questions, so the session finished early.)")
	}
	fmt.Printf("Placement: %s — grade %s, unit %s (ability %.2f ± %.2f)\n",
		p.Label, p.RecommendedGrade, p.RecommendedUnit, p.Ability, p.StandardError)
	fmt.Printf("Run `brainpod plan %s` to see today's playlist.\n", subject)
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"blogpilot/internal/domain/entity"
	"blogpilot/internal/errors"
	"blogpilot/internal/usecase"
)

const stopTimeout = 10 * time.Second

type command struct {
	flags        *flag.FlagSet
	needsSession bool
	run          func(ctx context.Context, d *deps, out io.Writer) error
	local        func(out io.Writer) error
}

var commands = map[string]*command{}

func register(name string, needsSession bool, setup func(fs *flag.FlagSet) *command) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	cmd := setup(fs)
	cmd.flags = fs
	cmd.needsSession = needsSession
	commands[name] = cmd
}

func init() {
	register("login", false, loginCommand)
	register("logout", false, func(fs *flag.FlagSet) *command {
		return &command{run: func(ctx context.Context, d *deps, out io.Writer) error {
			if err := d.Auth.Logout(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "Logged out")

			return nil
		}}
	})
	register("whoami", false, func(fs *flag.FlagSet) *command {
		return &command{run: func(ctx context.Context, d *deps, out io.Writer) error {
			return printJSON(out, sessionView(d.Session.Current()))
		}}
	})
	register("credits", true, func(fs *flag.FlagSet) *command {
		return &command{run: func(ctx context.Context, d *deps, out io.Writer) error {
			return printJSON(out, d.Credits.Refresh(ctx))
		}}
	})
	register("history", true, func(fs *flag.FlagSet) *command {
		return &command{run: func(ctx context.Context, d *deps, out io.Writer) error {
			history, err := d.Credits.History(ctx)
			if err != nil {
				return err
			}

			return printJSON(out, history)
		}}
	})
	register("generate", true, generateCommand)
	register("schedule", true, scheduleCommand)
	register("estimate", false, estimateCommand)
}

func loginCommand(fs *flag.FlagSet) *command {
	email := fs.String("email", "", "Account email")
	password := fs.String("password", os.Getenv("BLOGPILOT_PASSWORD"), "Account password (defaults to $BLOGPILOT_PASSWORD)")
	name := fs.String("name", "", "Display name (defaults to the email's local part)")

	return &command{run: func(ctx context.Context, d *deps, out io.Writer) error {
		session, err := d.Auth.Login(ctx, &usecase.LoginInput{
			Email:    *email,
			Password: *password,
			Name:     *name,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Logged in as %s\n", session.DisplayName)

		return nil
	}}
}

type sessionInfo struct {
	Authenticated bool       `json:"authenticated"`
	DisplayName   string     `json:"display_name,omitempty"`
	Subject       string     `json:"subject,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

func sessionView(s entity.Session) sessionInfo {
	return sessionInfo{
		Authenticated: s.IsAuthenticated(),
		DisplayName:   s.DisplayName,
		Subject:       s.Subject,
		ExpiresAt:     s.ExpiresAt,
	}
}

// draftFlags are the generation settings that can be overridden on the command line.
type draftFlags struct {
	fs         *flag.FlagSet
	topic      *string
	persona    *string
	prompt     *string
	imageCount *int
	wordMin    *int
	wordMax    *int
}

func newDraftFlags(fs *flag.FlagSet) *draftFlags {
	return &draftFlags{
		fs:         fs,
		topic:      fs.String("topic", "", "Interest topic"),
		persona:    fs.String("persona", "", "Writing persona"),
		prompt:     fs.String("prompt", "", "Custom prompt"),
		imageCount: fs.Int("images", entity.DefaultImageCount, "Number of images"),
		wordMin:    fs.Int("min", entity.DefaultWordMin, "Minimum word count"),
		wordMax:    fs.Int("max", entity.DefaultWordMax, "Maximum word count"),
	}
}

// patch includes only the flags given explicitly.
func (f *draftFlags) patch() entity.DraftPatch {
	var p entity.DraftPatch
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "topic":
			p.InterestTopic = f.topic
		case "persona":
			p.Persona = f.persona
		case "prompt":
			p.CustomPrompt = f.prompt
		case "images":
			p.ImageCount = f.imageCount
		case "min":
			p.WordMin = f.wordMin
		case "max":
			p.WordMax = f.wordMax
		}
	})

	return p
}

func generateCommand(fs *flag.FlagSet) *command {
	settings := newDraftFlags(fs)
	blogID := fs.Int64("blog", 0, "Use the saved settings of this blog")
	freeTrial := fs.Bool("free-trial", false, "Run as a free trial")

	return &command{run: func(ctx context.Context, d *deps, out io.Writer) error {
		if *blogID > 0 {
			if _, err := d.Blogs.Reload(ctx); err != nil {
				return err
			}
			if _, err := d.Blogs.Select(*blogID); err != nil {
				return err
			}
		}
		draft := d.Blogs.UpdateDraft(settings.patch())

		req := entity.GenerationRequestFromDraft(draft, *freeTrial)
		balance := d.Credits.Refresh(ctx)
		fmt.Fprintf(os.Stderr, "Estimated cost: %d credits (balance %d)\n",
			entity.EstimateCredits(req.ImageCount, req.WordRange), balance.CurrentCredit)

		d.Generation.SetProgressListener(func(job entity.GenerationJob) {
			fmt.Fprintf(os.Stderr, "%s: %d/%d images\n", job.Status, job.ResolvedCount, len(job.Slots))
		})

		job, err := d.Generation.Start(ctx, req)
		if err != nil {
			return err
		}

		final, err := d.Generation.Wait(ctx, job.ID)
		if err != nil {
			if errors.IsCanceled(err) {
				d.Generation.Cancel()
				d.Logger.Info("Generation interrupted", slog.String("job_id", job.ID.String()))

				return printJSON(out, final)
			}

			return err
		}
		if err := printJSON(out, final); err != nil {
			return err
		}
		if final.Status != entity.JobStatusCompleted {
			return errors.Errorf("generation ended with status %s", final.Status)
		}

		return nil
	}}
}

func scheduleCommand(fs *flag.FlagSet) *command {
	set := fs.Bool("set", false, "Replace the schedule with the given flags")
	frequency := fs.String("frequency", string(entity.FrequencyDaily), "hourly, daily or weekly")
	perDay := fs.Int("per-day", 1, "Posts per day")
	days := fs.String("days", "Mon,Wed,Fri", "Comma-separated days")
	times := fs.String("times", entity.DefaultTimeSlot, "Comma-separated HH:MM times")
	active := fs.Bool("active", true, "Enable scheduled posting")

	return &command{run: func(ctx context.Context, d *deps, out io.Writer) error {
		if !*set {
			cfg, saved := d.Schedule.Load(ctx)
			if !saved {
				fmt.Fprintln(os.Stderr, "No saved schedule; showing the default")
			}

			return printJSON(out, cfg)
		}

		saved, err := d.Schedule.Save(ctx, entity.ScheduleConfig{
			Frequency:   entity.Frequency(*frequency),
			PostsPerDay: *perDay,
			Days:        splitList(*days),
			TargetTimes: splitList(*times),
			IsActive:    *active,
		})
		if err != nil {
			return err
		}

		return printJSON(out, saved)
	}}
}

func estimateCommand(fs *flag.FlagSet) *command {
	settings := newDraftFlags(fs)

	return &command{local: func(out io.Writer) error {
		draft := entity.NewBlogDraft()
		settings.patch().Apply(&draft)

		return printJSON(out, map[string]any{
			"image_count": draft.Settings.ImageCount,
			"word_range":  draft.Settings.WordRange,
			"credits":     entity.EstimateCredits(draft.Settings.ImageCount, draft.Settings.WordRange),
		})
	}}
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driven/questionnaire/jsonfile"
	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driven/speech/console"
	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driven/speech/transcript"
	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driven"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driving"
)

// Messages shown between turns.
const (
	retryMessage    = "I didn't catch a number. Please say a number like 'two' or '3'."
	completeMessage = "Interview complete."
)

var (
	interviewTranscript string
	interviewFromStart  bool
	interviewQuestions  string
	interviewJSON       bool
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run a daily report interview",
	Long: `Runs a daily report interview one question at a time.

By default answers are read line by line from standard input. With
--transcript, answers are read from a file that a speech-to-text tool
appends one transcribed utterance per line to.

When every question has been answered the report template is filled in and
saved to the configured output path.`,
	Args: cobra.NoArgs,
	RunE: runInterview,
}

func init() {
	interviewCmd.Flags().StringVarP(&interviewTranscript, "transcript", "t", "", "read answers from a transcript file")
	interviewCmd.Flags().BoolVar(&interviewFromStart, "from-start", false,
		"with --transcript, also consume lines already in the file")
	interviewCmd.Flags().StringVarP(&interviewQuestions, "questions", "q", "", "questionnaire JSON file")
	interviewCmd.Flags().BoolVar(&interviewJSON, "json", false, "print the finished report as JSON")
	rootCmd.AddCommand(interviewCmd)
}

func runInterview(cmd *cobra.Command, _ []string) error {
	if interviewService == nil {
		return errors.New("interview service not configured")
	}
	if settingsService != nil {
		if err := settingsService.Validate(); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	session, err := startSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to start interview: %w", err)
	}

	out := cmd.OutOrStdout()
	cmd.Printf("Daily report interview (session %s)\n", shortID(session.ID))
	cmd.Printf("Location: %s\n", session.Location)
	cmd.Printf("Weather:  %s\n", session.Weather)
	cmd.Println()

	listener, closeListener, err := openListener(cmd)
	if err != nil {
		return err
	}
	defer closeListener()

	channel := &turnChannel{
		session:  session,
		speaker:  console.New(nil, out),
		listener: listener,
	}

	report, err := interviewService.Conduct(ctx, session, channel, func(turn domain.Turn) {
		printTurn(out, turn)
	})
	if err != nil {
		if errors.Is(err, domain.ErrListenerClosed) {
			return fmt.Errorf("interview stopped at Q%d: no more answers", session.QuestionNumber())
		}
		return err
	}

	if interviewJSON {
		return printJSON(cmd, report)
	}

	cmd.Println()
	cmd.Println(completeMessage)
	cmd.Printf("Report saved to %s\n", report.OutputPath)
	if report.PublishedTo != "" {
		cmd.Printf("Published to %s\n", report.PublishedTo)
	}
	return nil
}

func startSession(ctx context.Context) (*domain.Session, error) {
	if interviewQuestions == "" {
		return interviewService.NewSession(ctx)
	}
	questions, err := jsonfile.NewLoader(interviewQuestions).Load(ctx)
	if err != nil {
		return nil, err
	}
	return interviewService.NewSessionFrom(ctx, questions)
}

// openListener returns the answer source and a function releasing it.
func openListener(cmd *cobra.Command) (driven.Listener, func(), error) {
	if interviewTranscript == "" {
		if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			cmd.Println("Type each answer and press Enter. Ctrl+C cancels.")
			cmd.Println()
		}
		return console.New(cmd.InOrStdin(), io.Discard), func() {}, nil
	}

	var opts []transcript.Option
	if interviewFromStart {
		opts = append(opts, transcript.FromStart())
	}
	listener, err := transcript.NewListener(interviewTranscript, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open transcript: %w", err)
	}
	cmd.Printf("Listening for answers in %s\n\n", listener.Path())
	return listener, func() { _ = listener.Close() }, nil
}

// turnChannel numbers each prompt with the session's current question.
type turnChannel struct {
	session  *domain.Session
	speaker  driven.Speaker
	listener driven.Listener
}

var _ driving.SpeechChannel = (*turnChannel)(nil)

func (c *turnChannel) Speak(ctx context.Context, text string) error {
	return c.speaker.Speak(ctx, fmt.Sprintf("Q%d: %s", c.session.QuestionNumber(), text))
}

func (c *turnChannel) Listen(ctx context.Context) (string, error) {
	return c.listener.Listen(ctx)
}

func printTurn(w io.Writer, turn domain.Turn) {
	fmt.Fprintf(w, "You said: %s\n", turn.Response)
	switch turn.Outcome {
	case domain.TurnRetry:
		fmt.Fprintln(w, retryMessage)
	case domain.TurnSkipped:
		fmt.Fprintln(w, "Still no number. Skipping this question.")
	case domain.TurnExpanded:
		if n := len(turn.Added); n > 0 {
			fmt.Fprintf(w, "Adding %d follow-up questions.\n", n)
		}
	case domain.TurnStored:
	}
	fmt.Fprintln(w)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

package workers

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"dinger/errors"
	"dinger/services"

	"github.com/gookit/color"
)

const consoleHelp = `Commands:
  /to <did>      chat with <did>
  /new <did>     start a conversation with <did>
  /find <terms>  search notes
  /list          list conversations
  /did           print your DID
  <text>         send a ding to the active recipient`

// ConsoleWorker reads chat commands from a terminal. Plain lines are
// submitted as dings to the active recipient.
type ConsoleWorker struct {
	log     *slog.Logger
	service services.IDingerService
	in      io.Reader
	out     io.Writer
}

func NewConsoleWorker(log *slog.Logger, service services.IDingerService, in io.Reader, out io.Writer) *ConsoleWorker {
	return &ConsoleWorker{log: log, service: service, in: in, out: out}
}

// Run returns nil when the input is exhausted.
func (w *ConsoleWorker) Run(ctx context.Context) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(w.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	w.println(color.Gray.Sprint(consoleHelp))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return ctx.Err()
				}
			}
			w.Handle(ctx, line)
		}
	}
}

// Handle executes one console line.
func (w *ConsoleWorker) Handle(ctx context.Context, line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case "/to":
		w.service.SelectRecipient(arg)
		w.println(color.Cyan.Sprintf("Chatting with %s", arg))
	case "/new":
		w.service.StartConversation(arg)
		w.println(color.Cyan.Sprintf("New conversation with %s", arg))
	case "/find":
		found, err := w.service.Search(ctx, arg)
		if err != nil {
			w.println(color.Red.Sprintf("Search failed: %v", err))
			return
		}
		if len(found) == 0 {
			w.println(color.Gray.Sprint("No match"))
		}
		for _, d := range found {
			w.println(fmt.Sprintf("%s  %s -> %s: %s",
				color.Gray.Sprint(d.TimestampWritten), d.Sender, d.Recipient, d.Note))
		}
	case "/list":
		state := w.service.State()
		for _, partner := range state.Partners() {
			marker := " "
			if partner == state.ActiveRecipient {
				marker = "*"
			}
			w.println(fmt.Sprintf("%s %s (%d)", marker, partner, len(state.Conversation(partner))))
		}
	case "/did":
		w.println(color.Green.Sprint(w.service.State().LocalDID))
	case "/help":
		w.println(consoleHelp)
	default:
		if strings.HasPrefix(command, "/") {
			w.println(color.Yellow.Sprintf("Unknown command %s, try /help", command))
			return
		}
		if err := w.service.Submit(ctx, line); err != nil {
			w.report(err)
		}
	}
}

func (w *ConsoleWorker) report(err error) {
	switch {
	case stderrors.Is(err, errors.ErrEmptyNote), stderrors.Is(err, errors.ErrNoRecipient):
		w.println(color.Yellow.Sprint(w.service.State().ErrorMessage))
	default:
		w.log.Warn("Ding not sent", "error", err)
		w.println(color.Red.Sprintf("Ding not sent: %v", err))
	}
}

func (w *ConsoleWorker) println(s string) {
	_, _ = fmt.Fprintln(w.out, s)
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/vedp2003/fitnessclub/internal/config"
	"github.com/vedp2003/fitnessclub/internal/domain/models"
	"github.com/vedp2003/fitnessclub/internal/observability"
	"github.com/vedp2003/fitnessclub/internal/repository/textfile"
	"github.com/vedp2003/fitnessclub/internal/scheduler"
	commandsvc "github.com/vedp2003/fitnessclub/internal/service/commands"
	notifysvc "github.com/vedp2003/fitnessclub/internal/service/notify"
	reportingsvc "github.com/vedp2003/fitnessclub/internal/service/reporting"
	"github.com/vedp2003/fitnessclub/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	repo := textfile.NewFileRepository(cfg.Studio, logger.Named(baseLogger, "repo.textfile"))
	reportingSvc := reportingsvc.NewService(logger.Named(baseLogger, "svc.reporting"))
	dispatcher := commandsvc.NewService(repo, reportingSvc, logger.Named(baseLogger, "svc.commands"))
	notifier := notifysvc.NewWriterNotifier(os.Stdout, logger.Named(baseLogger, "svc.notify"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("Studio Manager is up running...")

	for _, cmd := range []models.CommandType{models.CommandLoadSchedule, models.CommandLoadMembers} {
		out, err := dispatcher.HandleCommand(ctx, models.Command{Type: cmd, Raw: string(cmd)})
		if err != nil {
			baseLogger.Warn("startup load skipped", zap.String("command", string(cmd)), zap.Error(err))
			continue
		}
		fmt.Print(out)
	}

	sched := scheduler.NewScheduler(*cfg, dispatcher, reportingSvc, notifier, logger.Named(baseLogger, "scheduler"))
	sched.Start()
	defer sched.Stop()

	run(ctx, dispatcher, os.Stdin, os.Stdout)

	if err := observability.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
		baseLogger.Error("failed to write metrics textfile", zap.Error(err))
	}
	fmt.Println("Studio Manager terminated.")
}

// run feeds operator lines to the dispatcher until Q, end of input or cancellation.
func run(ctx context.Context, dispatcher commandsvc.Dispatcher, in io.Reader, out io.Writer) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			cmd := models.ParseCommand(line)
			switch cmd.Type {
			case models.CommandEmpty:
				continue
			case models.CommandQuit:
				return
			}

			result, err := dispatcher.HandleCommand(ctx, cmd)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if result != "" {
				fmt.Fprint(out, result)
				if result[len(result)-1] != '\n' {
					fmt.Fprintln(out)
				}
			}
		}
	}
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/vedp2003/fitnessclub/internal/domain/models"
	"github.com/vedp2003/fitnessclub/internal/domain/roster"
	"github.com/vedp2003/fitnessclub/internal/domain/schedule"
	"github.com/vedp2003/fitnessclub/internal/observability"
	"github.com/vedp2003/fitnessclub/internal/repository/textfile"
)

// ErrInvalidArguments indicates the command payload could not be parsed.
var ErrInvalidArguments = errors.New("invalid command arguments")

// ErrUnsupportedCommand indicates we do not support the requested command.
var ErrUnsupportedCommand = errors.New("unsupported command")

// Studio rule violations.
var (
	ErrInvalidDate        = errors.New("not a valid calendar date")
	ErrFutureBirthDate    = errors.New("date of birth cannot be today or a future date")
	ErrUnderage           = errors.New("must be 18 or older to join")
	ErrMemberExists       = errors.New("already in the member database")
	ErrMembershipExpired  = errors.New("membership expired")
	ErrWrongStudio        = errors.New("not allowed at this studio")
	ErrAlreadyAttending   = errors.New("already in the class")
	ErrNotAttending       = errors.New("not attending the class")
	ErrTimeConflict       = errors.New("time conflict with another class")
	ErrGuestNotEligible   = errors.New("membership has no guest pass")
	ErrGuestPassExhausted = errors.New("guest pass not available")
)

const tracerName = "github.com/vedp2003/fitnessclub/internal/service/commands"

// ReportingAdapter defines the reporting functions required by the dispatcher.
type ReportingAdapter interface {
	BuildBillingReport(members []models.Member, today models.Date, generatedAt time.Time) models.BillingReport
}

// Dispatcher executes parsed studio commands against the roster and schedule.
type Dispatcher interface {
	HandleCommand(ctx context.Context, cmd models.Command) (string, error)
	BillingReport(ctx context.Context) (models.BillingReport, error)
}

// Service implements the Dispatcher interface. Commands and report snapshots
// are serialized by a single lock.
type Service struct {
	mu        sync.Mutex
	members   *roster.Roster
	schedule  *schedule.Schedule
	repo      textfile.Repository
	reporting ReportingAdapter
	logger    *zap.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewService constructs a command dispatcher with an empty roster and schedule.
func NewService(repository textfile.Repository, reporting ReportingAdapter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		members:   roster.New(),
		schedule:  schedule.New(),
		repo:      repository,
		reporting: reporting,
		logger:    logger,
		tracer:    otel.Tracer(tracerName),
		now:       time.Now,
	}
}

// HandleCommand applies a single command and returns the text to show the operator.
func (s *Service) HandleCommand(ctx context.Context, cmd models.Command) (string, error) {
	ctx, span := s.tracer.Start(ctx, "studio.handle_command",
		trace.WithAttributes(attribute.String("command", string(cmd.Type))),
	)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Debug("dispatching command", zap.String("command", string(cmd.Type)), zap.Strings("args", cmd.Args))

	today := models.DateOf(s.now())
	message, err := s.dispatch(ctx, cmd, today)
	if err != nil {
		span.RecordError(err)
		s.logger.Debug("command rejected", zap.String("command", string(cmd.Type)), zap.Error(err))
	}

	observability.RecordCommand(cmd.Type, err)
	observability.RecordRosterSize(s.members.Len())

	return message, err
}

// BillingReport snapshots the roster and totals its dues.
func (s *Service) BillingReport(ctx context.Context) (models.BillingReport, error) {
	if err := ctx.Err(); err != nil {
		return models.BillingReport{}, err
	}
	if s.reporting == nil {
		return models.BillingReport{}, errors.New("reporting is not configured")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	return s.reporting.BuildBillingReport(s.members.Members(), models.DateOf(now), now), nil
}

func (s *Service) dispatch(ctx context.Context, cmd models.Command, today models.Date) (string, error) {
	switch cmd.Type {
	case models.CommandEmpty:
		return "", nil
	case models.CommandAddBasic:
		return s.addMember(models.KindBasic, cmd.Args, today)
	case models.CommandAddFamily:
		return s.addMember(models.KindFamily, cmd.Args, today)
	case models.CommandAddPremium:
		return s.addMember(models.KindPremium, cmd.Args, today)
	case models.CommandCancel:
		return s.cancelMember(cmd.Args)
	case models.CommandAttend:
		return s.attend(cmd.Args, today)
	case models.CommandUnattend:
		return s.unattend(cmd.Args)
	case models.CommandAttendGuest:
		return s.attendGuest(cmd.Args, today)
	case models.CommandUnattendGuest:
		return s.unattendGuest(cmd.Args)
	case models.CommandShowSchedule:
		return s.showSchedule(today), nil
	case models.CommandPrintByProfile:
		return s.printMembers(today, s.members.RenderByProfile), nil
	case models.CommandPrintByCounty:
		return s.printMembers(today, s.members.RenderByCountyThenZip), nil
	case models.CommandPrintFees:
		return s.printMembers(today, s.members.RenderFeeReport), nil
	case models.CommandLoadSchedule:
		return s.loadSchedule(ctx)
	case models.CommandLoadMembers:
		return s.loadMembers(ctx, today)
	default:
		head := cmd.Raw
		if fields := strings.Fields(cmd.Raw); len(fields) > 0 {
			head = fields[0]
		}
		return "", fmt.Errorf("%q: %w", head, ErrUnsupportedCommand)
	}
}

func (s *Service) printMembers(today models.Date, render func(models.Date) string) string {
	if s.members.Len() == 0 {
		return "Member database is empty!"
	}
	return render(today)
}

func parseProfile(first, last, dobText string) (models.Profile, error) {
	dob, err := models.ParseDate(dobText)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	if !dob.IsValid() {
		return models.Profile{}, fmt.Errorf("DOB %s: %w", dob, ErrInvalidDate)
	}
	return models.NewProfile(first, last, dob), nil
}

func fullName(p models.Profile) string {
	return p.FirstName() + " " + p.LastName()
}

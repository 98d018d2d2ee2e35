package textfile

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/vedp2003/fitnessclub/internal/config"
	"github.com/vedp2003/fitnessclub/internal/domain/models"
	"github.com/vedp2003/fitnessclub/internal/domain/schedule"
)

// Repository defines the bulk-load operations the studio manager needs.
type Repository interface {
	ReadMembers(ctx context.Context) ([]models.Member, error)
	ReadSchedule(ctx context.Context) ([]*schedule.Session, error)
}

// FileRepository reads member lists and class schedules from plain text files.
type FileRepository struct {
	memberPath   string
	schedulePath string
	logger       *zap.Logger
}

// NewFileRepository builds a file backed repository for the configured paths.
func NewFileRepository(cfg config.StudioConfig, logger *zap.Logger) *FileRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileRepository{
		memberPath:   cfg.MemberFile,
		schedulePath: cfg.ScheduleFile,
		logger:       logger,
	}
}

// ReadMembers parses the configured member list file.
func (r *FileRepository) ReadMembers(ctx context.Context) ([]models.Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.memberPath)
	if err != nil {
		return nil, fmt.Errorf("open member list: %w", err)
	}
	defer f.Close()

	members, err := ParseMembers(f)
	if err != nil {
		return nil, fmt.Errorf("read member list %s: %w", r.memberPath, err)
	}

	r.logger.Debug("member list read", zap.String("path", r.memberPath), zap.Int("members", len(members)))
	return members, nil
}

// ReadSchedule parses the configured class schedule file.
func (r *FileRepository) ReadSchedule(ctx context.Context) ([]*schedule.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.schedulePath)
	if err != nil {
		return nil, fmt.Errorf("open class schedule: %w", err)
	}
	defer f.Close()

	sessions, err := ParseSchedule(f)
	if err != nil {
		return nil, fmt.Errorf("read class schedule %s: %w", r.schedulePath, err)
	}

	r.logger.Debug("class schedule read", zap.String("path", r.schedulePath), zap.Int("sessions", len(sessions)))
	return sessions, nil
}

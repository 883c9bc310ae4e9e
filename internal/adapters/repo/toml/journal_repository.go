package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/bnema/bonita-cli/internal/domain"
	"github.com/bnema/bonita-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const defaultJournalMaxRecords = 1000

// JournalRepository keeps the most recent launch records in a TOML file.
// Appending past the limit drops the oldest records.
type JournalRepository struct {
	path       string
	maxRecords int
	mu         *sync.RWMutex
}

var _ ports.LaunchJournal = (*JournalRepository)(nil)

func NewJournalRepository(cfg *viper.Viper) (*JournalRepository, error) {
	path, err := pathFromConfig(cfg, JournalPathKey, "journal.toml")
	if err != nil {
		return nil, err
	}

	maxRecords := defaultJournalMaxRecords
	if cfg != nil && cfg.IsSet(JournalMaxRecordsKey) {
		maxRecords = cfg.GetInt(JournalMaxRecordsKey)
	}

	return &JournalRepository{path: path, maxRecords: maxRecords, mu: lockForPath(path)}, nil
}

func (r *JournalRepository) Append(ctx context.Context, record domain.LaunchRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	file.Records = append(file.Records, toRecordSchema(record))
	if r.maxRecords > 0 && len(file.Records) > r.maxRecords {
		file.Records = file.Records[len(file.Records)-r.maxRecords:]
	}

	return writeTOMLFile(r.path, file)
}

func (r *JournalRepository) List(ctx context.Context) ([]domain.LaunchRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	records := make([]domain.LaunchRecord, 0, len(file.Records))
	for _, entry := range file.Records {
		records = append(records, fromRecordSchema(entry))
	}

	return records, nil
}

func (r *JournalRepository) readSchema() (journalFileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := journalFileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return journalFileSchema{}, fmt.Errorf("read journal file: %w", err)
	}

	var file journalFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return journalFileSchema{}, fmt.Errorf("decode journal file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return journalFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func toRecordSchema(record domain.LaunchRecord) recordSchema {
	return recordSchema{
		ID:          record.ID,
		Kind:        string(record.Kind),
		Profile:     string(record.Profile),
		ProcessName: record.ProcessName,
		EntityID:    record.EntityID,
		CaseID:      record.CaseID,
		TaskName:    record.TaskName,
		At:          formatTime(record.At),
	}
}

func fromRecordSchema(schema recordSchema) domain.LaunchRecord {
	return domain.LaunchRecord{
		ID:          schema.ID,
		Kind:        domain.RecordKind(schema.Kind),
		Profile:     domain.ProfileID(schema.Profile),
		ProcessName: schema.ProcessName,
		EntityID:    schema.EntityID,
		CaseID:      schema.CaseID,
		TaskName:    schema.TaskName,
		At:          parseTime(schema.At),
	}
}

package app

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sabbir073/Complete-Political-website-sub006/internal/domain/voters"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/apperr"
	"github.com/sabbir073/Complete-Political-website-sub006/internal/pkg/logger"

	"github.com/google/uuid"
)

// importBatchSize is the number of rows buffered before an upsert
const importBatchSize = 1000

// maxImportErrors caps the row errors kept in an ImportResult
const maxImportErrors = 100

// voterService implements the VoterService interface
type voterService struct {
	repo   voters.VoterRepository
	logger logger.Logger
}

// NewVoterService creates a new instance of VoterService
func NewVoterService(repo voters.VoterRepository, logger logger.Logger) (voters.VoterService, error) {
	return &voterService{repo: repo, logger: logger}, nil
}

func (s *voterService) Search(ctx context.Context, query *voters.SearchQuery) ([]*voters.Voter, error) {
	query.VoterNumber = strings.TrimSpace(query.VoterNumber)
	query.Name = strings.TrimSpace(query.Name)
	query.Ward = strings.TrimSpace(query.Ward)
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Search(ctx, query, voters.MaxSearchResults)
}

func (s *voterService) Create(ctx context.Context, voter *voters.Voter) (*voters.Voter, error) {
	voter.ID = uuid.NewString()
	if err := s.repo.Create(ctx, voter); err != nil {
		return nil, err
	}
	return voter, nil
}

func (s *voterService) Update(ctx context.Context, voter *voters.Voter) (*voters.Voter, error) {
	existing, err := s.repo.GetByID(ctx, voter.ID)
	if err != nil {
		return nil, err
	}
	voter.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, voter); err != nil {
		return nil, err
	}
	return voter, nil
}

func (s *voterService) GetByID(ctx context.Context, id string) (*voters.Voter, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *voterService) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *voterService) List(ctx context.Context, query *voters.VoterQuery) ([]*voters.Voter, int64, error) {
	return s.repo.List(ctx, query)
}

// voterColumns are the recognised CSV header names
var voterColumns = []string{
	"voter_number", "name_en", "name_bn", "father_name", "mother_name",
	"date_of_birth", "gender", "ward", "union", "polling_center", "address",
}

func (s *voterService) Import(ctx context.Context, r io.Reader) (*voters.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperr.Validation("csv is empty")
		}
		return nil, fmt.Errorf("%w: read csv header: %v", apperr.ErrValidation, err)
	}

	columns, err := mapVoterColumns(header)
	if err != nil {
		return nil, err
	}

	result := &voters.ImportResult{}
	batch := make([]*voters.Voter, 0, importBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.repo.UpsertBatch(ctx, batch); err != nil {
			return err
		}
		result.Imported += len(batch)
		batch = batch[:0]
		return nil
	}
	skip := func(line int, err error) {
		result.Skipped++
		if len(result.Errors) < maxImportErrors {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
		}
	}

	seen := make(map[string]int)
	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return result, fmt.Errorf("failed to read csv: %w", err)
			}
			skip(parseErr.StartLine, parseErr.Err)
			continue
		}
		line, _ := reader.FieldPos(0)

		voter, err := parseVoterRecord(record, columns)
		if err != nil {
			skip(line, err)
			continue
		}
		if first, dup := seen[voter.VoterNumber]; dup {
			skip(line, fmt.Errorf("voter number %s repeats line %d", voter.VoterNumber, first))
			continue
		}
		seen[voter.VoterNumber] = line

		batch = append(batch, voter)
		if len(batch) == importBatchSize {
			if err := flush(); err != nil {
				return result, err
			}
		}
	}
	if err := flush(); err != nil {
		return result, err
	}

	s.logger.Info("voter import finished", "imported", result.Imported, "skipped", result.Skipped)
	return result, nil
}

func mapVoterColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		for _, known := range voterColumns {
			if name == known {
				columns[name] = i
			}
		}
	}
	if _, ok := columns["voter_number"]; !ok {
		return nil, apperr.Validation("csv header must include voter_number")
	}
	_, en := columns["name_en"]
	_, bn := columns["name_bn"]
	if !en && !bn {
		return nil, apperr.Validation("csv header must include name_en or name_bn")
	}
	return columns, nil
}

func parseVoterRecord(record []string, columns map[string]int) (*voters.Voter, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	voter := &voters.Voter{
		ID:            uuid.NewString(),
		VoterNumber:   field("voter_number"),
		NameEn:        field("name_en"),
		NameBn:        field("name_bn"),
		FatherName:    field("father_name"),
		MotherName:    field("mother_name"),
		Gender:        strings.ToLower(field("gender")),
		Ward:          field("ward"),
		Union:         field("union"),
		PollingCenter: field("polling_center"),
		Address:       field("address"),
	}

	if dob := field("date_of_birth"); dob != "" {
		t, err := time.Parse(time.DateOnly, dob)
		if err != nil {
			return nil, fmt.Errorf("invalid date_of_birth %q", dob)
		}
		voter.DateOfBirth = &t
	}

	if err := voter.Validate(); err != nil {
		return nil, err
	}
	return voter, nil
}

package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/momhive/momhive/internal/model"
	"github.com/momhive/momhive/internal/repository"
)

var ErrNoScreeningData = errors.New("no screening data available")

type ScreeningResult struct {
	Total   int
	Outcome model.ScreeningOutcome
}

func (r ScreeningResult) Message() string {
	return r.Outcome.Message()
}

type ScreeningService struct {
	screeningRepository repository.ScreeningRepository
}

func NewScreeningService(screeningRepository repository.ScreeningRepository) *ScreeningService {
	return &ScreeningService{screeningRepository: screeningRepository}
}

// Score sums the answers, stores the total and classifies it
func (s *ScreeningService) Score(username string, answers [model.EPDSQuestionCount]int) (*ScreeningResult, error) {
	total := 0
	for _, a := range answers {
		total += a
	}

	entry := &model.ScreeningEntry{
		Username: username,
		Score:    total,
		Date:     time.Now().UTC(),
	}
	err := s.screeningRepository.Create(entry)
	if err != nil {
		return nil, err
	}

	return &ScreeningResult{
		Total:   total,
		Outcome: model.Classify(total),
	}, nil
}

func (s *ScreeningService) Latest(username string) (*model.ScreeningEntry, error) {
	entry, err := s.screeningRepository.Latest(username)
	if errors.Is(err, repository.ErrScreeningNotFound) {
		return nil, ErrNoScreeningData
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest screening: %w", err)
	}
	return entry, nil
}

package service

import (
	"fmt"

	"github.com/mazation/praktikaBack/internal/apperr"
	"github.com/mazation/praktikaBack/internal/dto"
	"github.com/mazation/praktikaBack/internal/model"
	"github.com/mazation/praktikaBack/internal/repository"
	"github.com/rs/zerolog/log"
)

type ResultService interface {
	Record(principal model.Principal, req dto.SubmitResultRequest) (*dto.MessageResponse, error)
	TeacherReport(principal model.Principal) (*dto.TeacherReportResponse, error)
}

type resultService struct {
	userRepo   repository.UserRepository
	testRepo   repository.TestRepository
	resultRepo repository.ResultRepository
}

func NewResultService(userRepo repository.UserRepository, testRepo repository.TestRepository, resultRepo repository.ResultRepository) ResultService {
	return &resultService{userRepo: userRepo, testRepo: testRepo, resultRepo: resultRepo}
}

// Record appends one scored attempt. No idempotency: resubmitting the
// same user/test pair adds another row.
func (s *resultService) Record(principal model.Principal, req dto.SubmitResultRequest) (*dto.MessageResponse, error) {
	user, err := s.userRepo.FindByID(principal.ID)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", principal.ID, err)
	}
	test, err := s.testRepo.FindByID(req.TestID)
	if err != nil {
		return nil, fmt.Errorf("test %d: %w", req.TestID, err)
	}

	score := *req.Score
	if score < 0 || score > test.MaxScore {
		return nil, fmt.Errorf("score %d not in [0,%d]: %w", score, test.MaxScore, apperr.ErrScoreOutOfRange)
	}

	result := model.Result{
		UserID: user.ID,
		TestID: test.ID,
		Score:  score,
	}
	if err := s.resultRepo.Create(&result); err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Uint("testID", test.ID).Msg("Record: failed to create result")
		return nil, fmt.Errorf("recording result: %w", err)
	}

	log.Info().Uint("resultID", result.ID).Uint("userID", user.ID).Uint("testID", test.ID).Int("score", score).Msg("Result recorded")
	return &dto.MessageResponse{Message: "success"}, nil
}

// TeacherReport returns, per test authored by the principal, every
// result on that test enriched with the student's name and the test
// title. Non-teachers are denied outright.
func (s *resultService) TeacherReport(principal model.Principal) (*dto.TeacherReportResponse, error) {
	if !principal.IsTeacher {
		return nil, apperr.ErrPermissionDenied
	}

	tests, err := s.testRepo.FindByAuthor(principal.ID)
	if err != nil {
		log.Error().Err(err).Uint("userID", principal.ID).Msg("TeacherReport: failed to list authored tests")
		return nil, fmt.Errorf("listing authored tests: %w", err)
	}

	groups := make([][]dto.ReportResultDTO, 0, len(tests))
	for _, test := range tests {
		results, err := s.resultRepo.FindByTestID(test.ID)
		if err != nil {
			log.Error().Err(err).Uint("testID", test.ID).Msg("TeacherReport: failed to list results")
			return nil, fmt.Errorf("listing results for test %d: %w", test.ID, err)
		}
		group := make([]dto.ReportResultDTO, 0, len(results))
		for _, r := range results {
			group = append(group, dto.ReportResultDTO{
				ID:        r.ID,
				TestTitle: test.Title,
				Score:     r.Score,
				UserName:  r.User.Name,
			})
		}
		groups = append(groups, group)
	}

	return &dto.TeacherReportResponse{Results: groups}, nil
}

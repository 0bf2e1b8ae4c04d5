package service

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/mazation/praktikaBack/internal/apperr"
	"github.com/mazation/praktikaBack/internal/dto"
	"github.com/mazation/praktikaBack/internal/model"
	"github.com/mazation/praktikaBack/internal/quiz"
	"github.com/mazation/praktikaBack/internal/repository"
	"github.com/mazation/praktikaBack/internal/storage"
	"github.com/rs/zerolog/log"
)

type TestService interface {
	CreateTest(principal model.Principal, req dto.CreateTestRequest) (*dto.CreateTestResponse, error)
	Dashboard(principal model.Principal) (*dto.DashboardResponse, error)
	GetTest(testID uint) (*dto.GetTestResponse, error)
}

type testService struct {
	testRepo  repository.TestRepository
	artifacts storage.ArtifactStore
}

func NewTestService(testRepo repository.TestRepository, artifacts storage.ArtifactStore) TestService {
	return &testService{testRepo: testRepo, artifacts: artifacts}
}

// CreateTest validates and stores an uploaded definition, then creates
// the Test row. The artifact is written before the row, so a storage
// failure never leaves a Test pointing at nothing.
func (s *testService) CreateTest(principal model.Principal, req dto.CreateTestRequest) (*dto.CreateTestResponse, error) {
	if !principal.IsTeacher {
		return nil, apperr.ErrPermissionDenied
	}

	raw, err := base64.StdEncoding.DecodeString(req.File)
	if err != nil {
		return nil, fmt.Errorf("file is not valid base64: %w", err)
	}

	// Reject malformed definitions up front; a stored artifact must
	// always decode.
	if _, err := quiz.Decode(bytes.NewReader(raw)); err != nil {
		return nil, err
	}

	maxScore, err := quiz.CountQuestions(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	ref, err := s.artifacts.Put(raw)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateTest: artifact write failed")
		return nil, fmt.Errorf("storing test definition: %w", err)
	}

	test := model.Test{
		Title:     req.Title,
		Path:      ref,
		CreatedBy: principal.ID,
		MaxScore:  maxScore,
		MaxTime:   req.MaxTime,
	}
	if err := s.testRepo.Create(&test); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateTest: failed to create test row")
		return nil, fmt.Errorf("creating test: %w", err)
	}

	log.Info().Uint("testID", test.ID).Uint("createdBy", principal.ID).Int("maxScore", maxScore).Msg("Test created")
	return &dto.CreateTestResponse{Title: test.Title, CreatedBy: test.CreatedBy, Path: test.Path}, nil
}

// Dashboard returns the tests visible to the principal: teachers see
// only what they authored, students see every test.
func (s *testService) Dashboard(principal model.Principal) (*dto.DashboardResponse, error) {
	var (
		tests []model.Test
		err   error
	)
	if principal.IsTeacher {
		tests, err = s.testRepo.FindByAuthor(principal.ID)
	} else {
		tests, err = s.testRepo.FindAll()
	}
	if err != nil {
		log.Error().Err(err).Uint("userID", principal.ID).Msg("Dashboard: failed to list tests")
		return nil, fmt.Errorf("listing tests: %w", err)
	}

	summaries := make([]dto.TestSummaryDTO, 0, len(tests))
	for _, t := range tests {
		var summary dto.TestSummaryDTO
		if err := copier.Copy(&summary, &t); err != nil {
			return nil, fmt.Errorf("preparing dashboard entry: %w", err)
		}
		summaries = append(summaries, summary)
	}

	return &dto.DashboardResponse{
		Email:     principal.Email,
		IsTeacher: principal.IsTeacher,
		Tests:     summaries,
	}, nil
}

// GetTest serves the decoded question set of any test to any
// authenticated principal; there is no ownership check on read.
func (s *testService) GetTest(testID uint) (*dto.GetTestResponse, error) {
	test, err := s.testRepo.FindByID(testID)
	if err != nil {
		return nil, err
	}

	raw, err := s.artifacts.Get(test.Path)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Str("ref", test.Path).Msg("GetTest: artifact read failed")
		return nil, fmt.Errorf("reading test definition: %w", err)
	}

	questions, err := quiz.Decode(bytes.NewReader(raw))
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("GetTest: stored artifact failed to decode")
		return nil, err
	}

	questionDTOs := make([]dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		answers := make([]dto.AnswerDTO, 0, len(q.Answers))
		for _, a := range q.Answers {
			answers = append(answers, dto.AnswerDTO{Answer: a.Text, IsRight: a.IsRight})
		}
		questionDTOs = append(questionDTOs, dto.QuestionDTO{
			Question: q.Text,
			Answers:  answers,
			Img:      q.ImageRef,
		})
	}

	return &dto.GetTestResponse{MaxTime: test.MaxTime, Questions: questionDTOs}, nil
}

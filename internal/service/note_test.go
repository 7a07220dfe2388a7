package service_test

import (
	"testing"

	"pandoro-backend/internal/database/models"
	apperrors "pandoro-backend/internal/errors"
	"pandoro-backend/internal/mocks"
	"pandoro-backend/internal/repository"
	"pandoro-backend/internal/service"
	"pandoro-backend/internal/testutils"
	"pandoro-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// NoteServiceTestSuite defines the test suite for NoteService
type NoteServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockNoteRepositoryInterface
	noteService  *service.NoteService
	noteFactory  *testutils.NoteFactory
	author       uuid.UUID
	personalNote *models.Note
}

// SetupTest sets up the test suite
func (suite *NoteServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockNoteRepositoryInterface(suite.ctrl)
	suite.noteService = service.NewNoteService(suite.mockRepo, validation.New())
	suite.noteFactory = testutils.NewNoteFactory()
	suite.author = uuid.New()
	suite.personalNote = suite.noteFactory.Create(suite.author)
}

// TearDownTest cleans up after each test
func (suite *NoteServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetNotes tests listing a page of personal notes
func (suite *NoteServiceTestSuite) TestGetNotes() {
	suite.mockRepo.EXPECT().GetPersonalByAuthor(suite.author, 5, 0).Return([]models.Note{*suite.personalNote}, int64(1), nil)

	page, err := suite.noteService.GetNotes(suite.author, service.PageRequest{PageSize: 5})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), page.Data, 1)
	assert.Equal(suite.T(), int64(1), page.Total)
	assert.True(suite.T(), page.IsLastPage)
}

// TestCreateNote tests creating a personal note
func (suite *NoteServiceTestSuite) TestCreateNote() {
	suite.mockRepo.EXPECT().
		Create(gomock.Any(), nil, nil).
		DoAndReturn(func(note *models.Note, _ repository.UpdateGuard, _ *models.UpdateEvent) error {
			assert.False(suite.T(), note.IsChangeNote())
			return nil
		})

	note, err := suite.noteService.CreateNote(suite.author, &service.NoteRequest{Content: "Buy a domain"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), &suite.author, note.AuthorID)
	assert.Equal(suite.T(), "Buy a domain", note.Content)
}

// TestCreateEmptyNote tests the content rule
func (suite *NoteServiceTestSuite) TestCreateEmptyNote() {
	_, err := suite.noteService.CreateNote(suite.author, &service.NoteRequest{})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestMarkAsDoneAndToDo tests toggling a personal note
func (suite *NoteServiceTestSuite) TestMarkAsDoneAndToDo() {
	suite.mockRepo.EXPECT().GetByID(suite.personalNote.ID).Return(suite.personalNote, nil).Times(2)
	gomock.InOrder(
		suite.mockRepo.EXPECT().
			Update(suite.personalNote, nil).
			DoAndReturn(func(note *models.Note, _ repository.UpdateGuard, _ ...models.UpdateEvent) error {
				assert.True(suite.T(), note.MarkedAsDone)
				assert.Equal(suite.T(), suite.author, *note.MarkedAsDoneByID)
				return nil
			}),
		suite.mockRepo.EXPECT().
			Update(suite.personalNote, nil).
			DoAndReturn(func(note *models.Note, _ repository.UpdateGuard, _ ...models.UpdateEvent) error {
				assert.False(suite.T(), note.MarkedAsDone)
				assert.Nil(suite.T(), note.MarkedAsDoneDate)
				return nil
			}),
	)

	assert.NoError(suite.T(), suite.noteService.MarkAsDone(suite.author, suite.personalNote.ID))
	assert.NoError(suite.T(), suite.noteService.MarkAsToDo(suite.author, suite.personalNote.ID))
}

// TestNoteOfAnotherUser tests that notes of other users look missing
func (suite *NoteServiceTestSuite) TestNoteOfAnotherUser() {
	suite.mockRepo.EXPECT().GetByID(suite.personalNote.ID).Return(suite.personalNote, nil)

	err := suite.noteService.DeleteNote(uuid.New(), suite.personalNote.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNoteNotFound)
}

// TestChangeNoteIsNotPersonal tests that change notes are not reachable as personal notes
func (suite *NoteServiceTestSuite) TestChangeNoteIsNotPersonal() {
	updateID := uuid.New()
	suite.personalNote.UpdateID = &updateID
	suite.mockRepo.EXPECT().GetByID(suite.personalNote.ID).Return(suite.personalNote, nil)

	err := suite.noteService.MarkAsDone(suite.author, suite.personalNote.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNoteNotFound)
}

// TestDeleteNote tests deleting a personal note
func (suite *NoteServiceTestSuite) TestDeleteNote() {
	suite.mockRepo.EXPECT().GetByID(suite.personalNote.ID).Return(suite.personalNote, nil)
	suite.mockRepo.EXPECT().Delete(suite.personalNote.ID, nil, nil).Return(nil).Times(1)

	err := suite.noteService.DeleteNote(suite.author, suite.personalNote.ID)

	assert.NoError(suite.T(), err)
}

// TestDeleteMissingNote tests the mapping of missing notes
func (suite *NoteServiceTestSuite) TestDeleteMissingNote() {
	noteID := uuid.New()
	suite.mockRepo.EXPECT().GetByID(noteID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.noteService.DeleteNote(suite.author, noteID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNoteNotFound)
}

// TestNoteServiceTestSuite runs the test suite
func TestNoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NoteServiceTestSuite))
}

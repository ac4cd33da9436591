package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/myworld/myworld-api/internal/domain"
	"github.com/myworld/myworld-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// Shared store mocks for the service tests.

// MockSessionStore is a mock implementation of store.SessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, session *domain.AssessmentSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.AssessmentSession, error) {
	args := m.Called(ctx, id)
	session, _ := args.Get(0).(*domain.AssessmentSession)
	return session, args.Error(1)
}

func (m *MockSessionStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.AssessmentSession, error) {
	args := m.Called(ctx, userID)
	sessions, _ := args.Get(0).([]*domain.AssessmentSession)
	return sessions, args.Error(1)
}

func (m *MockSessionStore) Complete(ctx context.Context, id uuid.UUID, completedAt time.Time) (time.Time, error) {
	args := m.Called(ctx, id, completedAt)
	stored, _ := args.Get(0).(time.Time)
	return stored, args.Error(1)
}

func (m *MockSessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	return m
}

// MockResponseStore is a mock implementation of store.ResponseStore
type MockResponseStore struct {
	mock.Mock
}

func (m *MockResponseStore) Create(ctx context.Context, response *domain.Response) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}

func (m *MockResponseStore) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*domain.Response, error) {
	args := m.Called(ctx, sessionID)
	responses, _ := args.Get(0).([]*domain.Response)
	return responses, args.Error(1)
}

func (m *MockResponseStore) WithTx(tx *sql.Tx) store.ResponseStore {
	return m
}

// MockQuestionStore is a mock implementation of store.QuestionStore
type MockQuestionStore struct {
	mock.Mock
}

func (m *MockQuestionStore) Create(ctx context.Context, question *domain.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	args := m.Called(ctx, id)
	question, _ := args.Get(0).(*domain.Question)
	return question, args.Error(1)
}

func (m *MockQuestionStore) List(ctx context.Context) ([]*domain.Question, error) {
	args := m.Called(ctx)
	questions, _ := args.Get(0).([]*domain.Question)
	return questions, args.Error(1)
}

func (m *MockQuestionStore) ListByDimension(ctx context.Context, dimensionID uuid.UUID) ([]*domain.Question, error) {
	args := m.Called(ctx, dimensionID)
	questions, _ := args.Get(0).([]*domain.Question)
	return questions, args.Error(1)
}

func (m *MockQuestionStore) Update(ctx context.Context, question *domain.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuestionStore) WithTx(tx *sql.Tx) store.QuestionStore {
	return m
}

// MockDimensionStore is a mock implementation of store.DimensionStore
type MockDimensionStore struct {
	mock.Mock
}

func (m *MockDimensionStore) Create(ctx context.Context, dimension *domain.Dimension) error {
	args := m.Called(ctx, dimension)
	return args.Error(0)
}

func (m *MockDimensionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dimension, error) {
	args := m.Called(ctx, id)
	dimension, _ := args.Get(0).(*domain.Dimension)
	return dimension, args.Error(1)
}

func (m *MockDimensionStore) List(ctx context.Context) ([]*domain.Dimension, error) {
	args := m.Called(ctx)
	dimensions, _ := args.Get(0).([]*domain.Dimension)
	return dimensions, args.Error(1)
}

func (m *MockDimensionStore) Update(ctx context.Context, dimension *domain.Dimension) error {
	args := m.Called(ctx, dimension)
	return args.Error(0)
}

func (m *MockDimensionStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDimensionStore) WithTx(tx *sql.Tx) store.DimensionStore {
	return m
}

// MockAnswerOptionStore is a mock implementation of store.AnswerOptionStore
type MockAnswerOptionStore struct {
	mock.Mock
}

func (m *MockAnswerOptionStore) Create(ctx context.Context, option *domain.AnswerOption) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

func (m *MockAnswerOptionStore) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*domain.AnswerOption, error) {
	args := m.Called(ctx, questionID)
	options, _ := args.Get(0).([]*domain.AnswerOption)
	return options, args.Error(1)
}

func (m *MockAnswerOptionStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAnswerOptionStore) WithTx(tx *sql.Tx) store.AnswerOptionStore {
	return m
}

// MockAppointmentStore is a mock implementation of store.AppointmentStore
type MockAppointmentStore struct {
	mock.Mock
}

func (m *MockAppointmentStore) Create(ctx context.Context, appointment *domain.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	appointment, _ := args.Get(0).(*domain.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Appointment, error) {
	args := m.Called(ctx, userID)
	appointments, _ := args.Get(0).([]*domain.Appointment)
	return appointments, args.Error(1)
}

func (m *MockAppointmentStore) Update(ctx context.Context, appointment *domain.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAppointmentStore) WithTx(tx *sql.Tx) store.AppointmentStore {
	return m
}

// MockReminderStore is a mock implementation of store.ReminderStore
type MockReminderStore struct {
	mock.Mock
}

func (m *MockReminderStore) Create(ctx context.Context, reminder *domain.Reminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}

func (m *MockReminderStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	args := m.Called(ctx, id)
	reminder, _ := args.Get(0).(*domain.Reminder)
	return reminder, args.Error(1)
}

func (m *MockReminderStore) ListByUser(ctx context.Context, userID uuid.UUID, filter store.ReminderFilter) ([]*domain.Reminder, error) {
	args := m.Called(ctx, userID, filter)
	reminders, _ := args.Get(0).([]*domain.Reminder)
	return reminders, args.Error(1)
}

func (m *MockReminderStore) Update(ctx context.Context, reminder *domain.Reminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}

func (m *MockReminderStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReminderStore) WithTx(tx *sql.Tx) store.ReminderStore {
	return m
}

// MockUserStore is a mock implementation of store.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

package forms

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/hirelogic/hirelogic/internal/models"
	"github.com/hirelogic/hirelogic/internal/services"
	"github.com/hirelogic/hirelogic/internal/utils"
)

// Controller validates structured form input and dispatches to the relevant
// service. It never lets a raw error escape: every submission resolves to a
// result carrying user-facing text.
type Controller struct {
	validate       *validator.Validate
	questionnaires services.QuestionnaireService
	accounts       services.AccountCreator
	candidates     services.CandidateService
	log            *logrus.Logger
}

func NewController(
	questionnaires services.QuestionnaireService,
	accounts services.AccountCreator,
	candidates services.CandidateService,
	log *logrus.Logger,
) *Controller {
	if log == nil {
		log = logrus.New()
	}
	return &Controller{
		validate:       validator.New(),
		questionnaires: questionnaires,
		accounts:       accounts,
		candidates:     candidates,
		log:            log,
	}
}

const (
	MessageSuccess    = "success"
	messageUnexpected = "Error: An unexpected error occurred on the server."
)

// --- questionnaire form ---

type QuestionnaireInput struct {
	JobDescription string `validate:"required,min=50"`
}

type QuestionnaireResult struct {
	Message       string            `json:"message"`
	Questionnaire string            `json:"questionnaire,omitempty"`
	FieldErrors   map[string]string `json:"field_errors,omitempty"`
}

var questionnaireMessages = map[string]string{
	"JobDescription": "Job description must be at least 50 characters long.",
}

func (c *Controller) SubmitQuestionnaire(ctx context.Context, in QuestionnaireInput) QuestionnaireResult {
	if fieldErrs := c.check(in, questionnaireMessages); fieldErrs != nil {
		return QuestionnaireResult{
			Message:     "Error: " + fieldErrs["JobDescription"],
			FieldErrors: fieldErrs,
		}
	}

	questionnaire, err := c.questionnaires.Generate(ctx, in.JobDescription)
	if err != nil {
		c.log.WithError(err).Warn("questionnaire generation failed")
		return QuestionnaireResult{Message: messageUnexpected}
	}
	if questionnaire == "" {
		return QuestionnaireResult{Message: "Error: Failed to generate questionnaire."}
	}
	return QuestionnaireResult{Message: MessageSuccess, Questionnaire: questionnaire}
}

// --- signup form ---

type SignupInput struct {
	Name            string `validate:"required,min=2"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"eqfield=Password"`
}

type SignupResult struct {
	Message     string            `json:"message"`
	AccountID   string            `json:"account_id,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

var signupMessages = map[string]string{
	"Name":            "Name must be at least 2 characters",
	"Email":           "Enter a valid email address",
	"Password":        "Password must be at least 6 characters",
	"ConfirmPassword": "Passwords don't match",
}

func (c *Controller) SubmitSignup(ctx context.Context, in SignupInput) SignupResult {
	if fieldErrs := c.check(in, signupMessages); fieldErrs != nil {
		return SignupResult{Message: "Error: invalid signup details", FieldErrors: fieldErrs}
	}

	account, err := c.accounts.Create(ctx, in.Name, in.Email, in.Password)
	if err != nil {
		if errors.Is(err, utils.ErrEmailTaken) {
			return SignupResult{Message: "This email is already in use. Please try another one."}
		}
		c.log.WithError(err).Warn("account creation failed")
		return SignupResult{Message: "An unexpected error occurred. Please try again."}
	}
	return SignupResult{Message: MessageSuccess, AccountID: account.ID}
}

// --- candidate application form ---

type ApplicationInput struct {
	Name  string `validate:"required,min=2"`
	Email string `validate:"required,email"`
	Role  string `validate:"required,min=3"`
}

type ApplicationResult struct {
	Message     string            `json:"message"`
	Candidate   *models.Candidate `json:"candidate,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

var applicationMessages = map[string]string{
	"Name":  "Name must be at least 2 characters.",
	"Email": "Please enter a valid email address.",
	"Role":  "Role must be at least 3 characters.",
}

func (c *Controller) SubmitApplication(ctx context.Context, in ApplicationInput) ApplicationResult {
	if fieldErrs := c.check(in, applicationMessages); fieldErrs != nil {
		return ApplicationResult{Message: "Error: invalid application", FieldErrors: fieldErrs}
	}

	candidate, err := c.candidates.Apply(ctx, in.Name, in.Email, in.Role)
	if err != nil {
		c.log.WithError(err).Warn("application submission failed")
		return ApplicationResult{Message: messageUnexpected}
	}
	return ApplicationResult{Message: MessageSuccess, Candidate: candidate}
}

// check validates in and maps offending fields to their declared messages.
// Returns nil when the input is valid.
func (c *Controller) check(in any, messages map[string]string) map[string]string {
	err := c.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": messageUnexpected}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()]
		if !ok {
			msg = "Invalid value."
		}
		out[fe.Field()] = msg
	}
	return out
}

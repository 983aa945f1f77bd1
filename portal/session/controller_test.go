package session

import (
	"context"
	"testing"
	"time"

	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/banoqabil/jobhub/portal/chat"
	"github.com/banoqabil/jobhub/portal/company"
	"github.com/banoqabil/jobhub/portal/company/companyinfra"
	"github.com/banoqabil/jobhub/portal/company/companysrv"
	"github.com/banoqabil/jobhub/portal/interaction"
	"github.com/banoqabil/jobhub/portal/job"
	"github.com/banoqabil/jobhub/portal/job/jobinfra"
	"github.com/banoqabil/jobhub/portal/job/jobsrv"
	"github.com/banoqabil/jobhub/portal/notification"
	"github.com/banoqabil/jobhub/portal/student"
	"github.com/banoqabil/jobhub/portal/student/studentinfra"
	"github.com/banoqabil/jobhub/portal/student/studentsrv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdvisor struct{}

func (stubAdvisor) Advise(_ context.Context, _ string, _ []string) string {
	return "Keep building projects."
}

func (stubAdvisor) MatchJob(_ context.Context, _, _ string, _ []string) (int, string) {
	return 80, "Strong overlap."
}

type harness struct {
	controller *Controller
	log        *interaction.Log
	center     *notification.Center
	chat       *chat.Service
}

func newHarness(t *testing.T, jobs []job.Job, companies []company.Company) *harness {
	t.Helper()

	log := interaction.NewLog()
	center := notification.NewCenter()
	chatSvc := chat.NewService()

	controller := NewController(
		studentsrv.NewStudentService(studentinfra.NewMemoryRepository(nil)),
		companysrv.NewCompanyService(companyinfra.NewMemoryRepository(companies)),
		jobsrv.NewJobService(jobinfra.NewMemoryRepository(jobs), []kernel.JobCategory{"Software Development"}),
		log, center, chatSvc,
		stubAdvisor{},
		50*time.Millisecond,
	)

	return &harness{controller: controller, log: log, center: center, chat: chatSvc}
}

func sampleJob() job.Job {
	return job.Job{
		ID:       kernel.NewJobID("job-1"),
		Title:    "Junior Frontend Developer",
		Company:  "Innovatech",
		Location: "Karachi",
		Salary:   "Competitive",
		Type:     kernel.JobTypeInternship,
		Category: "Software Development",
		PostedAt: time.Now(),
	}
}

func sampleCompany() company.Company {
	return company.Company{
		ID:       kernel.NewCompanyID("company-1"),
		Name:     "Innovatech",
		Industry: "Software",
	}
}

func studentDraft(name string) student.StudentDraft {
	return student.StudentDraft{
		Name:   name,
		Email:  "ali@example.com",
		Phone:  "0300-0000000",
		Campus: "Main Campus",
		Course: "Web Development",
		Batch:  "2024",
		Skills: []string{"Python"},
	}
}

func companyDraft(name string) company.CompanyDraft {
	return company.CompanyDraft{
		Name:     name,
		Industry: "Software",
		Website:  "https://acme.example.com",
	}
}

func TestLoginRecordsInteractionAndRoutesByRole(t *testing.T) {
	tests := []struct {
		role kernel.Role
		view ViewState
	}{
		{kernel.RoleStudent, ViewProfileSetup},
		{kernel.RoleCompany, ViewProfileSetup},
		{kernel.RoleAdmin, ViewAdmin},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			h := newHarness(t, nil, nil)

			state, err := h.controller.Login(tt.role)
			require.NoError(t, err)

			assert.True(t, state.LoggedIn)
			assert.Equal(t, tt.view, state.View)
			assert.False(t, state.ActorID.IsEmpty())

			sessions := h.log.ActiveSessions()
			require.Len(t, sessions, 1)
			assert.Equal(t, interaction.TypeLogin, sessions[0].Type)
		})
	}
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	h := newHarness(t, nil, nil)

	_, err := h.controller.Login(kernel.Role("WIZARD"))
	assert.Error(t, err)
	assert.False(t, h.controller.Snapshot().LoggedIn)
}

func TestStudentProfileCompletionLandsOnHome(t *testing.T) {
	h := newHarness(t, nil, nil)
	ctx := context.Background()

	_, err := h.controller.Login(kernel.RoleStudent)
	require.NoError(t, err)

	created, err := h.controller.CompleteStudentProfile(ctx, studentDraft("Ali"))
	require.NoError(t, err)
	assert.Equal(t, "Ali", created.Name)

	state := h.controller.Snapshot()
	assert.Equal(t, ViewHome, state.View)
	assert.Equal(t, created.ID.String(), state.ActorID.String())

	// The newest log entry is still the LOGIN event; profile completion
	// does not append to the ledger.
	entries := h.log.All()
	require.Len(t, entries, 1)
	assert.Equal(t, interaction.TypeLogin, entries[0].Type)
}

func TestCompanyProfileCompletionLandsOnPortal(t *testing.T) {
	h := newHarness(t, nil, nil)
	ctx := context.Background()

	_, err := h.controller.Login(kernel.RoleCompany)
	require.NoError(t, err)

	_, err = h.controller.CompleteCompanyProfile(ctx, companyDraft("Acme"))
	require.NoError(t, err)

	assert.Equal(t, ViewCompanyPortal, h.controller.Snapshot().View)
}

func TestProfileCompletionRequiresMatchingRole(t *testing.T) {
	h := newHarness(t, nil, nil)
	ctx := context.Background()

	_, err := h.controller.Login(kernel.RoleCompany)
	require.NoError(t, err)

	_, err = h.controller.CompleteStudentProfile(ctx, studentDraft("Ali"))
	assert.Error(t, err)
	assert.Equal(t, ViewProfileSetup, h.controller.Snapshot().View)
}

func TestNavigateConsultsAuthorizationTable(t *testing.T) {
	h := newHarness(t, nil, nil)

	_, err := h.controller.Login(kernel.RoleStudent)
	require.NoError(t, err)

	_, err = h.controller.Navigate(ViewAdmin)
	assert.Error(t, err)
	assert.Equal(t, ViewProfileSetup, h.controller.Snapshot().View)

	state, err := h.controller.Navigate(ViewHome)
	require.NoError(t, err)
	assert.Equal(t, ViewHome, state.View)
}

func TestNavigateRejectsUnknownView(t *testing.T) {
	h := newHarness(t, nil, nil)

	_, err := h.controller.Login(kernel.RoleStudent)
	require.NoError(t, err)

	_, err = h.controller.Navigate(ViewState("BASEMENT"))
	assert.Error(t, err)
}

func TestApplyResolvesCompanyByName(t *testing.T) {
	h := newHarness(t, []job.Job{sampleJob()}, []company.Company{sampleCompany()})
	ctx := context.Background()

	_, err := h.controller.Login(kernel.RoleStudent)
	require.NoError(t, err)
	_, err = h.controller.CompleteStudentProfile(ctx, studentDraft("Ali"))
	require.NoError(t, err)
	_, err = h.controller.SelectJob(ctx, kernel.NewJobID("job-1"))
	require.NoError(t, err)

	applied, err := h.controller.Apply(ctx)
	require.NoError(t, err)
	assert.True(t, applied)

	activity := h.log.Activity()
	require.Len(t, activity, 1)
	assert.Equal(t, interaction.TypeApplication, activity[0].Type)
	assert.Equal(t, "Junior Frontend Developer", activity[0].ItemName)

	alerts := h.center.For(kernel.NewProfileID("company-1"))
	require.Len(t, alerts, 1)
	assert.Equal(t, notification.TypeApplicationAlert, alerts[0].Type)
}

func TestApplyFallsBackToBroadcastRecipient(t *testing.T) {
	h := newHarness(t, []job.Job{sampleJob()}, nil)
	ctx := context.Background()

	_, err := h.controller.Login(kernel.RoleStudent)
	require.NoError(t, err)
	_, err = h.controller.CompleteStudentProfile(ctx, studentDraft("Ali"))
	require.NoError(t, err)
	_, err = h.controller.SelectJob(ctx, kernel.NewJobID("job-1"))
	require.NoError(t, err)

	applied, err := h.controller.Apply(ctx)
	require.NoError(t, err)
	assert.True(t, applied)

	broadcast := h.center.For(notification.BroadcastRecipient)
	require.Len(t, broadcast, 1)
	assert.False(t, broadcast[0].IsRead)
}

func TestApplyWithoutProfileIsSilentNoOp(t *testing.T) {
	h := newHarness(t, []job.Job{sampleJob()}, nil)
	ctx := context.Background()

	_, err := h.controller.Login(kernel.RoleStudent)
	require.NoError(t, err)

	applied, err := h.controller.Apply(ctx)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Empty(t, h.log.Activity())
	assert.Equal(t, 0, h.center.Len())
}

func TestHireFlow(t *testing.T) {
	h := newHarness(t, nil, nil)
	ctx := context.Background()

	// Enroll Sara through an admin sitting first.
	_, err := h.controller.Login(kernel.RoleAdmin)
	require.NoError(t, err)
	sara, err := h.controller.EnrollStudent(ctx, student.EnrollStudentRequest{
		Name:  "Sara",
		Email: "sara@example.com",
	})
	require.NoError(t, err)
	h.controller.Logout()

	_, err = h.controller.Login(kernel.RoleCompany)
	require.NoError(t, err)
	_, err = h.controller.CompleteCompanyProfile(ctx, companyDraft("Acme"))
	require.NoError(t, err)

	thread, err := h.controller.Hire(ctx, sara.ID)
	require.NoError(t, err)

	state := h.controller.Snapshot()
	assert.Equal(t, ViewMessages, state.View)

	activity := h.log.Activity()
	require.Len(t, activity, 1)
	assert.Equal(t, interaction.TypeHiring, activity[0].Type)
	assert.Equal(t, sara.ID.String(), activity[0].ToID.String())

	offers := h.center.For(kernel.NewProfileID(sara.ID.String()))
	require.Len(t, offers, 1)
	assert.Equal(t, notification.TypeHireOffer, offers[0].Type)
	assert.False(t, offers[0].IsRead)

	assert.Equal(t, 1, h.chat.Len())
	assert.True(t, thread.Has(kernel.NewProfileID(sara.ID.String())))

	// Hiring the same student again reuses the thread.
	_, err = h.controller.Hire(ctx, sara.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, h.chat.Len())
}

func TestSendMessageRecordsInteraction(t *testing.T) {
	h := newHarness(t, nil, nil)
	ctx := context.Background()

	_, err := h.controller.Login(kernel.RoleAdmin)
	require.NoError(t, err)
	sara, err := h.controller.EnrollStudent(ctx, student.EnrollStudentRequest{
		Name:  "Sara",
		Email: "sara@example.com",
	})
	require.NoError(t, err)
	h.controller.Logout()

	_, err = h.controller.Login(kernel.RoleCompany)
	require.NoError(t, err)
	_, err = h.controller.CompleteCompanyProfile(ctx, companyDraft("Acme"))
	require.NoError(t, err)
	thread, err := h.controller.Hire(ctx, sara.ID)
	require.NoError(t, err)

	before := h.log.Len()
	msg, sent := h.controller.SendMessage(thread.ID, "Welcome aboard!")
	require.True(t, sent)
	assert.Equal(t, "Welcome aboard!", msg.Text)
	assert.Equal(t, before+1, h.log.Len())
	assert.Equal(t, interaction.TypeMessage, h.log.All()[0].Type)

	_, sent = h.controller.SendMessage(thread.ID, "   ")
	assert.False(t, sent)
	assert.Equal(t, before+1, h.log.Len())
}

func TestLogoutIsSingleTeardown(t *testing.T) {
	h := newHarness(t, nil, nil)
	ctx := context.Background()

	_, err := h.controller.Login(kernel.RoleAdmin)
	require.NoError(t, err)
	sara, err := h.controller.EnrollStudent(ctx, student.EnrollStudentRequest{
		Name:  "Sara",
		Email: "sara@example.com",
	})
	require.NoError(t, err)
	h.controller.Logout()

	_, err = h.controller.Login(kernel.RoleCompany)
	require.NoError(t, err)
	_, err = h.controller.CompleteCompanyProfile(ctx, companyDraft("Acme"))
	require.NoError(t, err)
	_, err = h.controller.Hire(ctx, sara.ID)
	require.NoError(t, err)

	require.Greater(t, h.center.Len(), 0)
	require.Greater(t, h.chat.Len(), 0)
	interactionsBefore := h.log.Len()

	state := h.controller.Logout()

	assert.False(t, state.LoggedIn)
	assert.Equal(t, kernel.RoleStudent, state.Role)
	assert.Equal(t, ViewLogin, state.View)
	assert.Equal(t, 0, h.center.Len())
	assert.Equal(t, 0, h.chat.Len())

	// Entities and the ledger survive the boundary.
	assert.Equal(t, interactionsBefore, h.log.Len())
	_, err = h.controller.Login(kernel.RoleAdmin)
	require.NoError(t, err)
	stats, err := h.controller.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Students)
	assert.Equal(t, 1, stats.Companies)
}

func TestAdminFormsRequireAdminRole(t *testing.T) {
	h := newHarness(t, nil, nil)
	ctx := context.Background()

	_, err := h.controller.Login(kernel.RoleStudent)
	require.NoError(t, err)

	_, err = h.controller.EnrollStudent(ctx, student.EnrollStudentRequest{Name: "Sara", Email: "sara@example.com"})
	assert.Error(t, err)

	_, err = h.controller.AddPartner(ctx, company.AddCompanyRequest{Name: "Acme", Industry: "Software"})
	assert.Error(t, err)

	_, err = h.controller.PostJob(ctx, job.CreateJobRequest{})
	assert.Error(t, err)
}

func TestAdminFormsShowToasts(t *testing.T) {
	h := newHarness(t, nil, nil)
	ctx := context.Background()

	_, err := h.controller.Login(kernel.RoleAdmin)
	require.NoError(t, err)

	_, err = h.controller.EnrollStudent(ctx, student.EnrollStudentRequest{Name: "Sara", Email: "sara@example.com"})
	require.NoError(t, err)

	msg, visible := h.controller.Toast()
	assert.True(t, visible)
	assert.Equal(t, "Student added successfully!", msg)

	_, err = h.controller.AddPartner(ctx, company.AddCompanyRequest{Name: "Acme", Industry: "Software"})
	require.NoError(t, err)

	msg, visible = h.controller.Toast()
	assert.True(t, visible)
	assert.Equal(t, "Company added successfully!", msg)
}

func TestOpenThreadLandsOnMessages(t *testing.T) {
	h := newHarness(t, nil, nil)
	ctx := context.Background()

	other := chat.Participant{
		ID:   kernel.NewProfileID("company-9"),
		Name: "Globex",
		Role: kernel.RoleCompany,
	}

	// Without a profile the sitting cannot chat.
	_, _, err := h.controller.OpenThread(other)
	assert.Error(t, err)

	_, err = h.controller.Login(kernel.RoleStudent)
	require.NoError(t, err)
	_, err = h.controller.CompleteStudentProfile(ctx, studentDraft("Ali"))
	require.NoError(t, err)

	first, created, err := h.controller.OpenThread(other)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, ViewMessages, h.controller.Snapshot().View)

	again, created, err := h.controller.OpenThread(other)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, 1, h.chat.Len())
}

func TestCareerAdviceRequiresStudentProfile(t *testing.T) {
	h := newHarness(t, nil, nil)
	ctx := context.Background()

	_, err := h.controller.GetCareerAdvice(ctx)
	assert.Error(t, err)

	_, err = h.controller.Login(kernel.RoleStudent)
	require.NoError(t, err)
	_, err = h.controller.CompleteStudentProfile(ctx, studentDraft("Ali"))
	require.NoError(t, err)

	advice, err := h.controller.GetCareerAdvice(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Keep building projects.", advice)
}

func TestMatchSelectedJob(t *testing.T) {
	h := newHarness(t, []job.Job{sampleJob()}, nil)
	ctx := context.Background()

	_, err := h.controller.Login(kernel.RoleStudent)
	require.NoError(t, err)
	_, err = h.controller.CompleteStudentProfile(ctx, studentDraft("Ali"))
	require.NoError(t, err)

	_, _, err = h.controller.MatchSelectedJob(ctx)
	assert.Error(t, err)

	_, err = h.controller.SelectJob(ctx, kernel.NewJobID("job-1"))
	require.NoError(t, err)

	percentage, explanation, err := h.controller.MatchSelectedJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, 80, percentage)
	assert.Equal(t, "Strong overlap.", explanation)
}

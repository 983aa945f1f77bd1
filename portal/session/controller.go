package session

import (
	"context"
	"sync"
	"time"

	"github.com/banoqabil/jobhub/pkg/kernel"
	"github.com/banoqabil/jobhub/pkg/logx"
	"github.com/banoqabil/jobhub/portal/chat"
	"github.com/banoqabil/jobhub/portal/company"
	"github.com/banoqabil/jobhub/portal/company/companysrv"
	"github.com/banoqabil/jobhub/portal/interaction"
	"github.com/banoqabil/jobhub/portal/job"
	"github.com/banoqabil/jobhub/portal/job/jobsrv"
	"github.com/banoqabil/jobhub/portal/notification"
	"github.com/banoqabil/jobhub/portal/student"
	"github.com/banoqabil/jobhub/portal/student/studentsrv"
	"github.com/google/uuid"
)

// AdviceService is the opaque career-assistant collaborator. It never
// returns an error; failures come back as fallback text.
type AdviceService interface {
	Advise(ctx context.Context, bio string, skills []string) string
	MatchJob(ctx context.Context, title, description string, skills []string) (percentage int, explanation string)
}

// Controller is the portal's state machine. Every mutation funnels
// through it, one sitting at a time; the stores and the interaction log
// outlive the sitting, while notifications and chat threads do not.
type Controller struct {
	mu sync.Mutex

	students  *studentsrv.StudentService
	companies *companysrv.CompanyService
	jobs      *jobsrv.JobService
	log       *interaction.Log
	center    *notification.Center
	chat      *chat.Service
	advisor   AdviceService
	toast     *toaster

	session Session
}

// NewController wires the state machine to its collaborators.
func NewController(
	students *studentsrv.StudentService,
	companies *companysrv.CompanyService,
	jobs *jobsrv.JobService,
	log *interaction.Log,
	center *notification.Center,
	chatSvc *chat.Service,
	advisor AdviceService,
	toastTTL time.Duration,
) *Controller {
	return &Controller{
		students:  students,
		companies: companies,
		jobs:      jobs,
		log:       log,
		center:    center,
		chat:      chatSvc,
		advisor:   advisor,
		toast:     newToaster(toastTTL),
		session:   initialSession(),
	}
}

// Login opens a sitting for the chosen role. No credentials exist; the
// role selection is the whole ceremony. A LOGIN interaction is recorded
// immediately, before any profile exists, under a throwaway actor id.
func (c *Controller) Login(role kernel.Role) (Session, error) {
	if !role.IsValid() {
		return Session{}, ErrInvalidRole().WithDetail("role", string(role))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	actorID := kernel.NewProfileID(uuid.NewString())
	actorName := role.DisplayName() + " User"

	c.session = Session{
		LoggedIn:  true,
		Role:      role,
		ActorID:   actorID,
		ActorName: actorName,
		View:      ViewProfileSetup,
	}
	if role == kernel.RoleAdmin {
		c.session.View = ViewAdmin
	}

	c.log.Record(interaction.TypeLogin, actorID, actorName, "", "", "Portal Login")
	logx.Infof("session opened: role=%s view=%s", role, c.session.View)

	return c.session, nil
}

// Logout is the single teardown operation. Session-scoped collections
// (threads, notifications, toast) reset; entities and the interaction
// log persist across the boundary.
func (c *Controller) Logout() Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.toast.Stop()
	c.chat.Clear()
	c.center.Clear()
	c.session = initialSession()

	logx.Info("session closed")
	return c.session
}

// CompleteStudentProfile finishes student setup: the profile joins the
// directory and the sitting adopts its identity.
func (c *Controller) CompleteStudentProfile(ctx context.Context, draft student.StudentDraft) (*student.Student, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.session.LoggedIn {
		return nil, ErrNotLoggedIn()
	}
	if c.session.Role != kernel.RoleStudent {
		return nil, ErrWrongRole().WithDetail("role", string(c.session.Role))
	}
	if c.session.View != ViewProfileSetup {
		return nil, ErrViewNotAllowed().WithDetail("view", string(c.session.View))
	}

	created, err := c.students.CreateFromDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	c.session.Student = created
	c.session.ActorID = kernel.NewProfileID(created.ID.String())
	c.session.ActorName = created.Name
	c.session.View = ViewHome

	return created, nil
}

// CompleteCompanyProfile finishes partner setup and lands on the
// company portal.
func (c *Controller) CompleteCompanyProfile(ctx context.Context, draft company.CompanyDraft) (*company.Company, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.session.LoggedIn {
		return nil, ErrNotLoggedIn()
	}
	if c.session.Role != kernel.RoleCompany {
		return nil, ErrWrongRole().WithDetail("role", string(c.session.Role))
	}
	if c.session.View != ViewProfileSetup {
		return nil, ErrViewNotAllowed().WithDetail("view", string(c.session.View))
	}

	created, err := c.companies.CreateFromDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	c.session.Company = created
	c.session.ActorID = kernel.NewProfileID(created.ID.String())
	c.session.ActorName = created.Name
	c.session.View = ViewCompanyPortal

	return created, nil
}

// Navigate switches screens after consulting the authorization table.
// A disallowed target leaves the current view unchanged.
func (c *Controller) Navigate(view ViewState) (Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !view.IsValid() {
		return c.session, ErrInvalidView().WithDetail("view", string(view))
	}

	if !CanAccess(c.session.LoggedIn, c.session.Role, view) {
		return c.session, ErrViewNotAllowed().
			WithDetail("view", string(view)).
			WithDetail("role", string(c.session.Role))
	}

	c.session.View = view
	return c.session, nil
}

// SelectJob opens a listing's detail screen.
func (c *Controller) SelectJob(ctx context.Context, jobID kernel.JobID) (*job.JobResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !CanAccess(c.session.LoggedIn, c.session.Role, ViewJobDetails) {
		return nil, ErrViewNotAllowed().WithDetail("view", string(ViewJobDetails))
	}

	selected, err := c.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	c.session.SelectedJobID = jobID
	c.session.View = ViewJobDetails
	return selected, nil
}

// SelectStudent opens a student's CV screen.
func (c *Controller) SelectStudent(ctx context.Context, studentID kernel.StudentID) (*student.Student, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !CanAccess(c.session.LoggedIn, c.session.Role, ViewStudentCV) {
		return nil, ErrViewNotAllowed().WithDetail("view", string(ViewStudentCV))
	}

	selected, err := c.students.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	c.session.SelectedStudentID = studentID
	c.session.View = ViewStudentCV
	return selected, nil
}

// Apply submits the signed-in student's application for the selected
// listing. Without a student profile or a selected job it quietly does
// nothing: the portal never surfaces these as failures.
func (c *Controller) Apply(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.session.LoggedIn || c.session.Role != kernel.RoleStudent || c.session.Student == nil {
		return false, nil
	}
	if c.session.SelectedJobID.IsEmpty() {
		return false, nil
	}

	listing, err := c.jobs.GetJobByID(ctx, c.session.SelectedJobID)
	if err != nil {
		return false, err
	}

	applicant := c.session.Student
	recipient := notification.BroadcastRecipient
	toID := kernel.ProfileID("")

	if match, findErr := c.companies.FindByName(ctx, listing.Company); findErr == nil && match != nil {
		recipient = kernel.NewProfileID(match.ID.String())
		toID = recipient
	}

	c.log.Record(interaction.TypeApplication,
		kernel.NewProfileID(applicant.ID.String()), applicant.Name,
		toID, listing.Company, string(listing.Title))
	c.center.NotifyApplication(recipient, applicant.Name, string(listing.Title))

	c.toast.Show("Application submitted!")
	return true, nil
}

// Hire sends a hire offer from the signed-in company to a student:
// one HIRING interaction, one HIRE_OFFER notification, and a chat
// thread between the two, landing on the messages screen.
func (c *Controller) Hire(ctx context.Context, studentID kernel.StudentID) (chat.Thread, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.session.LoggedIn {
		return chat.Thread{}, ErrNotLoggedIn()
	}
	if c.session.Role != kernel.RoleCompany || c.session.Company == nil {
		return chat.Thread{}, ErrWrongRole().WithDetail("role", string(c.session.Role))
	}

	candidate, err := c.students.GetStudentByID(ctx, studentID)
	if err != nil {
		return chat.Thread{}, err
	}

	employer := c.session.Company
	employerID := kernel.NewProfileID(employer.ID.String())
	candidateID := kernel.NewProfileID(candidate.ID.String())

	c.log.Record(interaction.TypeHiring,
		employerID, employer.Name,
		candidateID, candidate.Name, "Hire Offer")
	c.center.NotifyHire(candidateID, employer.Name)

	thread, _ := c.chat.GetOrCreateThread(
		chat.Participant{ID: employerID, Name: employer.Name, Role: kernel.RoleCompany},
		chat.Participant{ID: candidateID, Name: candidate.Name, Role: kernel.RoleStudent},
	)

	c.session.View = ViewMessages
	return thread, nil
}

// OpenThread finds or starts a conversation with the counterpart and
// lands on the messages screen. Reuses the existing thread when one
// with that counterpart already exists.
func (c *Controller) OpenThread(other chat.Participant) (chat.Thread, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	self, ok := c.currentParticipant()
	if !ok {
		return chat.Thread{}, false, ErrProfileIncomplete()
	}

	thread, created := c.chat.GetOrCreateThread(self, other)
	c.session.View = ViewMessages
	return thread, created, nil
}

// SendMessage relays a chat message from the current sitting. Blank
// text, a stale thread, or a profile-less sitting all drop quietly.
// A sent message also lands in the interaction log.
func (c *Controller) SendMessage(threadID kernel.ThreadID, text string) (chat.Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sender, ok := c.currentParticipant()
	if !ok {
		return chat.Message{}, false
	}

	msg, sent := c.chat.SendMessage(threadID, sender, text)
	if !sent {
		return chat.Message{}, false
	}

	if thread, found := c.chat.ThreadByID(threadID); found {
		other := thread.Counterpart(sender.ID)
		c.log.Record(interaction.TypeMessage,
			sender.ID, sender.Name, other.ID, other.Name, msg.Text)
	}

	return msg, true
}

// GetCareerAdvice asks the assistant for guidance based on the
// signed-in student's profile. The collaborator supplies fallback text
// on failure, so this never errors once a profile exists.
func (c *Controller) GetCareerAdvice(ctx context.Context) (string, error) {
	c.mu.Lock()
	profile := c.session.Student
	c.mu.Unlock()

	if profile == nil {
		return "", ErrProfileIncomplete()
	}
	return c.advisor.Advise(ctx, profile.Experiences, profile.Skills), nil
}

// MatchSelectedJob scores the selected listing against the signed-in
// student's skills.
func (c *Controller) MatchSelectedJob(ctx context.Context) (int, string, error) {
	c.mu.Lock()
	profile := c.session.Student
	jobID := c.session.SelectedJobID
	c.mu.Unlock()

	if profile == nil {
		return 0, "", ErrProfileIncomplete()
	}
	if jobID.IsEmpty() {
		return 0, "", ErrInvalidRequest().WithDetail("reason", "no job selected")
	}

	listing, err := c.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		return 0, "", err
	}

	percentage, explanation := c.advisor.MatchJob(ctx, string(listing.Title), string(listing.Description), profile.Skills)
	return percentage, explanation, nil
}

// EnrollStudent is the admin's short enrollment form.
func (c *Controller) EnrollStudent(ctx context.Context, req student.EnrollStudentRequest) (*student.Student, error) {
	if err := c.requireAdmin(); err != nil {
		return nil, err
	}

	created, err := c.students.Enroll(ctx, req)
	if err != nil {
		return nil, err
	}

	c.toast.Show("Student added successfully!")
	return created, nil
}

// AddPartner is the admin's short company form.
func (c *Controller) AddPartner(ctx context.Context, req company.AddCompanyRequest) (*company.Company, error) {
	if err := c.requireAdmin(); err != nil {
		return nil, err
	}

	created, err := c.companies.AddPartner(ctx, req)
	if err != nil {
		return nil, err
	}

	c.toast.Show("Company added successfully!")
	return created, nil
}

// PostJob is the admin's listing form.
func (c *Controller) PostJob(ctx context.Context, req job.CreateJobRequest) (*job.Job, error) {
	if err := c.requireAdmin(); err != nil {
		return nil, err
	}

	created, err := c.jobs.CreateJob(ctx, req)
	if err != nil {
		return nil, err
	}

	c.toast.Show("Internship suggestion posted!")
	return created, nil
}

// DashboardStats are the overview-tab totals on the admin screen.
type DashboardStats struct {
	Students  int `json:"students"`
	Companies int `json:"companies"`
	Jobs      int `json:"jobs"`
}

// Dashboard returns the admin overview totals.
func (c *Controller) Dashboard(ctx context.Context) (DashboardStats, error) {
	if err := c.requireAdmin(); err != nil {
		return DashboardStats{}, err
	}

	students, err := c.students.CountStudents(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	companies, err := c.companies.CountCompanies(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	jobs, err := c.jobs.CountJobs(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	return DashboardStats{Students: students, Companies: companies, Jobs: jobs}, nil
}

// Snapshot returns a copy of the current session state.
func (c *Controller) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Toast returns the transient banner text and whether it is showing.
func (c *Controller) Toast() (string, bool) {
	return c.toast.Current()
}

// CurrentParticipant implements the chat-boundary resolver.
func (c *Controller) CurrentParticipant() (chat.Participant, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentParticipant()
}

// CurrentProfileID implements the notification-boundary resolver.
func (c *Controller) CurrentProfileID() (kernel.ProfileID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.session.LoggedIn || !c.session.ProfileComplete() {
		return "", false
	}
	return c.session.ActorID, true
}

func (c *Controller) currentParticipant() (chat.Participant, bool) {
	if !c.session.LoggedIn || !c.session.ProfileComplete() {
		return chat.Participant{}, false
	}
	return chat.Participant{
		ID:   c.session.ActorID,
		Name: c.session.ActorName,
		Role: c.session.Role,
	}, true
}

func (c *Controller) requireAdmin() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.session.LoggedIn {
		return ErrNotLoggedIn()
	}
	if c.session.Role != kernel.RoleAdmin {
		return ErrWrongRole().WithDetail("role", string(c.session.Role))
	}
	return nil
}

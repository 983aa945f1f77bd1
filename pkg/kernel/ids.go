package kernel

type StudentID string

func NewStudentID(id string) StudentID { return StudentID(id) }
func (s StudentID) String() string     { return string(s) }
func (s StudentID) IsEmpty() bool      { return string(s) == "" }

type CompanyID string

func NewCompanyID(id string) CompanyID { return CompanyID(id) }
func (c CompanyID) String() string     { return string(c) }
func (c CompanyID) IsEmpty() bool      { return string(c) == "" }

type JobID string

func NewJobID(id string) JobID { return JobID(id) }
func (j JobID) String() string { return string(j) }
func (j JobID) IsEmpty() bool  { return string(j) == "" }

type InteractionID string

func NewInteractionID(id string) InteractionID { return InteractionID(id) }
func (i InteractionID) String() string         { return string(i) }
func (i InteractionID) IsEmpty() bool          { return string(i) == "" }

type NotificationID string

func NewNotificationID(id string) NotificationID { return NotificationID(id) }
func (n NotificationID) String() string          { return string(n) }
func (n NotificationID) IsEmpty() bool           { return string(n) == "" }

type ThreadID string

func NewThreadID(id string) ThreadID { return ThreadID(id) }
func (t ThreadID) String() string    { return string(t) }
func (t ThreadID) IsEmpty() bool     { return string(t) == "" }

type MessageID string

func NewMessageID(id string) MessageID { return MessageID(id) }
func (m MessageID) String() string     { return string(m) }
func (m MessageID) IsEmpty() bool      { return string(m) == "" }

// ProfileID identifies either a student or a company as a notification
// recipient or a chat participant.
type ProfileID string

func NewProfileID(id string) ProfileID { return ProfileID(id) }
func (p ProfileID) String() string     { return string(p) }
func (p ProfileID) IsEmpty() bool      { return string(p) == "" }

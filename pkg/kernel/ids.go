package kernel

type JobID string

func NewJobID(id string) JobID { return JobID(id) }
func (r JobID) String() string { return string(r) }
func (r JobID) IsEmpty() bool  { return string(r) == "" }

type ApplicantID string

func NewApplicantID(id string) ApplicantID { return ApplicantID(id) }
func (r ApplicantID) String() string       { return string(r) }
func (r ApplicantID) IsEmpty() bool        { return string(r) == "" }

type AdminID string

func NewAdminID(id string) AdminID { return AdminID(id) }
func (r AdminID) String() string   { return string(r) }
func (r AdminID) IsEmpty() bool    { return string(r) == "" }

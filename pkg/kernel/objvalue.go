package kernel

import "strings"

type Email string

func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool  { return string(e) == "" }

// IsValid performs the minimal shape check; the store's unique index is the
// real gatekeeper.
func (e Email) IsValid() bool {
	s := string(e)
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1
}

type Phone string

func (p Phone) String() string { return string(p) }

type FirstName string

func (n FirstName) String() string { return string(n) }

type LastName string

func (n LastName) String() string { return string(n) }

type JobTitle string

func (t JobTitle) String() string { return string(t) }

type JobDescription string

func (d JobDescription) String() string { return string(d) }

type Skill string

type Benefit string

// BlobURL is an externally addressable URL of a stored upload.
type BlobURL string

func (u BlobURL) String() string { return string(u) }

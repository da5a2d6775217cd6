package codeforces

// VerdictOK is the judge's verdict for an accepted submission.
const VerdictOK = "OK"

// RatingEvent is one rated contest participation.
type RatingEvent struct {
	ContestID               int    `json:"contestId"`
	ContestName             string `json:"contestName"`
	Rank                    int    `json:"rank"`
	RatingUpdateTimeSeconds int64  `json:"ratingUpdateTimeSeconds"`
	OldRating               int    `json:"oldRating"`
	NewRating               int    `json:"newRating"`
}

// RatingChange is the signed rating delta of the event.
func (e RatingEvent) RatingChange() int {
	return e.NewRating - e.OldRating
}

// Submission is one judge verdict, flattened from the API shape.
type Submission struct {
	ID                  int64  `json:"id"`
	ContestID           int    `json:"contestId"`
	ProblemIndex        string `json:"problemIndex"`
	Verdict             string `json:"verdict"`
	CreationTimeSeconds int64  `json:"creationTimeSeconds"`
}

// Accepted reports whether the verdict is OK.
func (s Submission) Accepted() bool {
	return s.Verdict == VerdictOK
}

// Contest is an entry of the global contest list.
type Contest struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Phase            string `json:"phase"`
	StartTimeSeconds int64  `json:"startTimeSeconds"`
	DurationSeconds  int64  `json:"durationSeconds"`
}

// EndTimeSeconds is the end of the contest window.
func (c Contest) EndTimeSeconds() int64 {
	return c.StartTimeSeconds + c.DurationSeconds
}

// Problem is an entry of the global problem catalog.
type Problem struct {
	ContestID int      `json:"contestId"`
	Index     string   `json:"index"`
	Name      string   `json:"name"`
	Rating    int      `json:"rating,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// ContestProblems is the single-contest lookup answer.
type ContestProblems struct {
	ContestID int       `json:"contestId"`
	Name      string    `json:"name"`
	Problems  []Problem `json:"problems"`
}

type envelope[T any] struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
	Result  T      `json:"result"`
}

type submissionWire struct {
	ID                  int64   `json:"id"`
	ContestID           int     `json:"contestId"`
	CreationTimeSeconds int64   `json:"creationTimeSeconds"`
	Problem             Problem `json:"problem"`
	Verdict             string  `json:"verdict"`
}

type problemsetWire struct {
	Problems []Problem `json:"problems"`
}

type standingsWire struct {
	Contest  Contest   `json:"contest"`
	Problems []Problem `json:"problems"`
}

package matcher

import "fmt"

// EmptyInputError reports a job description or resume whose text is empty
// or whitespace-only. Document names which input was rejected.
type EmptyInputError struct {
	Document string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("empty input: %s contains no usable text", e.Document)
}

// EmptySkillSetError reports a job description from which no skill tokens
// could be extracted (empty text or nothing but stop words).
type EmptySkillSetError struct{}

func (e *EmptySkillSetError) Error() string {
	return "no skill tokens could be extracted from the job description"
}

// TooManyResumesError reports a batch that exceeds the per-request resume cap.
type TooManyResumesError struct {
	Count int
	Limit int
}

func (e *TooManyResumesError) Error() string {
	return fmt.Sprintf("too many resumes: got %d, limit is %d", e.Count, e.Limit)
}

package constants

// ReviewStatus is the canonical status for rows in verification_records.
type ReviewStatus string

// Stable values (store these exact strings in DB).
const (
	ReviewPending  ReviewStatus = "PENDING"  // sampled, waiting for a human
	ReviewVerified ReviewStatus = "VERIFIED" // extraction confirmed correct
	ReviewMismatch ReviewStatus = "MISMATCH" // extraction disagrees with the source page
	ReviewSkipped  ReviewStatus = "SKIPPED"  // reviewer could not locate the row
)

// ReviewStatuses holds the allowed values for the review_status field.
var ReviewStatuses = []string{
	string(ReviewPending),
	string(ReviewVerified),
	string(ReviewMismatch),
	string(ReviewSkipped),
}

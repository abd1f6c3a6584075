package mysql

const insertSubmissionSQL = `
INSERT INTO booking_submissions
  (id, venue_id, customer, date_from, date_to, guests, outcome, reason, booking_id, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// Newest first; served by idx_submissions_venue_created.
const listSubmissionsByVenueSQL = `
SELECT id, venue_id, customer, date_from, date_to, guests, outcome, reason, booking_id, created_at
FROM booking_submissions
WHERE venue_id = ?
ORDER BY created_at DESC, id DESC
LIMIT ?
`

const countSubmissionsByOutcomeSQL = `
SELECT outcome, COUNT(*)
FROM booking_submissions
WHERE venue_id = ?
GROUP BY outcome
`

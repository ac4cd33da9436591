// Package service contains the application's use-case services: user
// registration and credential verification, the assessment-session engine
// with its scoring aggregator, the questionnaire catalog, and the
// owner-scoped appointment and reminder services.
//
// Services receive the caller's identity as an explicit parameter; none of
// them read an ambient "current user". Ownership of a scoped write is
// decided by ResolveOwner.
package service

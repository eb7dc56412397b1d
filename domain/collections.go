package domain

const (
	CollectionUsers = "users"
)
const (
	CollectionEvents = "events"
)
const (
	CollectionRegistrations = "registrations"
)
const (
	CollectionStudentTeams = "studentteams"
)
const (
	CollectionColleges = "colleges"
)

// Package services contains the JobHunt stores: accounts with the current
// session, the job catalog with saved jobs and applications, and the
// profile read model over both. Each store owns its state behind a mutex and
// persists through a metadata.Repository.
package services

// Keys of the persisted records.
const (
	KeyUsers       = "jh_users"
	KeyCurrentUser = "jh_current_user"
	KeySessionKey  = "jh_session_key"
	KeyCatalog     = "jh_v2"
)

// Package models defines the JobHunt data model: accounts, job listings,
// applications, and the query types used to filter the catalog.
package models

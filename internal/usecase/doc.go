// Package usecase contains the business logic of the flight offer service:
// the offer search workflow (initiate, poll, transform, fallback), location
// autocomplete and the upcoming flights listing.
package usecase

/*
Package kickoffsdk provides a client SDK for the Kick-off football platform
backend: teams, fields, bookings, matches, finance, moderation, media,
notifications, search and the community feed.

# Overview

Every call goes through one Client. The Client attaches the stored access
token as a bearer header and, when the backend answers 401, refreshes the
token silently and resends the request once. Service modules hang off the
Client, one per backend area:

	client := kickoffsdk.NewClient(kickoffsdk.Options{
		BaseURL:     "https://kickoff.example.com/api",
		Credentials: store,
		Navigator:   nav,
	})

	auth, err := client.Auth.Login(ctx, "player@example.com", "secret")

	teams, err := client.Teams.List(ctx, kickoffsdk.TeamFilter{City: "Hanoi"})

	booking, err := client.Bookings.Approve(ctx, 42)

# Credentials

Tokens live in a CredentialStore under the keys "accessToken" and
"refreshToken". Login and Register store both; Logout clears both even when
the server call fails. NewMemoryCredentialStore keeps them for the life of
the process; persistent stores implement the same three methods.

# Token Refresh

A request that fails with 401 is handled once:

 1. The request is marked as retried. A second 401 is returned to the caller.
 2. Without a stored refresh token the original 401 is returned.
 3. Otherwise POST /auth/refresh is called on a bare request. On success the
    new access token is stored and the request is resent.
 4. If the refresh fails, both tokens are cleared, the Navigator is asked to
    redirect to login, and a *RefreshError is returned.

Concurrent requests that hit 401 with the same refresh token share a single
refresh call, so a failed refresh redirects exactly once.

# Error Handling

Non-2xx responses come back as *APIError carrying the status, the server's
message and the raw body:

	_, err := client.Teams.Get(ctx, id)
	if kickoffsdk.IsStatus(err, http.StatusNotFound) {
		// ...
	}

	if errors.Is(err, kickoffsdk.ErrSessionExpired) {
		// the user must log in again
	}

Two reads never fail: Auth.CurrentUser and Matches.Result return nil data
instead of an error, meaning "not signed in" and "no result yet".

# Pagination

Page[T] is the list envelope. Some endpoints return a bare array; the SDK
wraps those in a synthesized envelope with total equal to the array length
and a single page.
*/
package kickoffsdk

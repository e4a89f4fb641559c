/*
Package rest exposes the LangGPT HTTP/JSON API.

Routes are registered on a plain http.ServeMux using method patterns:

	POST /register    create an account
	POST /token       form login, returns a bearer token
	POST /login       JSON login, same response as /token
	GET  /api/me      current user
	POST /translate   draft and review a translation
	GET  /history     the caller's past translations, newest first
	GET  /health      liveness

Every error body has the shape {"detail": "..."}; 401 responses also carry
WWW-Authenticate: Bearer.
*/
package rest

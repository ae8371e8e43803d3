// Package obfuscation is the HTTP service around the encid codec. It maps
// int64 identifiers to opaque tokens and back over a small JSON API:
//
//	GET /api/obfuscation/encrypt/{id}     -> {"value":"obf_..."}
//	GET /api/obfuscation/decrypt/{value}  -> 12345
//	GET /                                 -> service banner
//	GET /health                           -> {"status":"healthy",...}
//	GET /health/live, /health/ready       -> probes
//
// Every decrypt failure renders the same 400 body so callers cannot tell a
// malformed token from a tampered one.
package obfuscation

package handler

type DigestResponse struct {
	Key    uint64 `json:"key"`
	Digest string `json:"digest"`
}

type ReverseResponse struct {
	Digest string `json:"digest"`
	Key    uint64 `json:"key"`
	Bits   int    `json:"bits"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

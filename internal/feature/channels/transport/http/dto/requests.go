// Package dto defines data transfer objects for the channels feature's HTTP transport layer.
package dto

// CreateChannelReq represents the request body for creating a channel.
type CreateChannelReq struct {
	Name string `json:"name" binding:"required,max=128"`
}

// PostMessageReq represents the request body for posting a message.
type PostMessageReq struct {
	Content string `json:"content" binding:"required,max=2000"`
}

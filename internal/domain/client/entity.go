package client

type Client struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Categories are the services a client can be signed up for.
var Categories = []string{"Flyer Design", "Poster Design", "Video Creation", "Web Development"}

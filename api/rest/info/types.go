package info

type Response struct {
	Msg    string `json:"msg"`
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

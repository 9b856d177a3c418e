package kanboard

import "context"

// ConnectionStatus is the result of a connectivity probe.
type ConnectionStatus struct {
	Connected bool   `json:"connected"`
	User      any    `json:"user,omitempty"`
	Error     string `json:"error,omitempty"`
	ServerURL string `json:"server_url"`
	Username  string `json:"username"`
}

// ServerInfo summarizes the remote server and the authenticated identity.
type ServerInfo struct {
	ServerVersion any    `json:"server_version"`
	UserInfo      any    `json:"user_info"`
	APIURL        string `json:"api_url"`
	Connected     bool   `json:"connected"`
	Error         string `json:"error,omitempty"`
}

// TestConnection performs one low-cost round trip (getMe) and reports
// reachability. It never returns an error; failures are folded into the
// status so diagnostic tools can always render something useful.
func (c *Client) TestConnection(ctx context.Context) ConnectionStatus {
	user, _ := c.cfg.BasicAuth()
	status := ConnectionStatus{
		ServerURL: c.cfg.URL,
		Username:  user,
	}

	me, err := c.Call(ctx, "getMe", nil)
	if err != nil {
		status.Error = err.Error()
		return status
	}
	status.Connected = true
	status.User = me
	return status
}

// GetServerInfo fetches the application version and the authenticated user.
func (c *Client) GetServerInfo(ctx context.Context) ServerInfo {
	info := ServerInfo{APIURL: c.cfg.URL}

	version, err := c.Call(ctx, "getVersion", nil)
	if err != nil {
		info.Error = err.Error()
		return info
	}
	me, err := c.Call(ctx, "getMe", nil)
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.ServerVersion = version
	info.UserInfo = me
	info.Connected = true
	return info
}

package config

// NotifyConfig holds Pushover credentials and the scheduled check's cron expression.
type NotifyConfig struct {
	PushoverUserKey  string
	PushoverAPIToken string
	PushoverBaseURL  string
	Schedule         string
	RunOnStart       bool
}

// Enabled reports whether Pushover credentials are present.
func (n NotifyConfig) Enabled() bool {
	return n.PushoverUserKey != "" && n.PushoverAPIToken != ""
}

func loadNotify() NotifyConfig {
	return NotifyConfig{
		PushoverUserKey:  envOrDefault(envPushoverUser, ""),
		PushoverAPIToken: envOrDefault(envPushoverToken, ""),
		PushoverBaseURL:  envOrDefault(envPushoverURL, ""),
		Schedule:         envOrDefault(envNotifySched, defaultNotifySched),
		RunOnStart:       boolEnvOrDefault(envNotifyOnStart, defaultNotifyOnStart),
	}
}

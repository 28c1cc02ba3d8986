package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "userdesk",
	Subsystem: "auth",
	Name:      "login_attempts_total",
	Help:      "Login attempts by result.",
}, []string{"result"})

const (
	loginResultSuccess = "success"
	loginResultFailure = "failure"
)

// Package metrics defines and registers all custom Prometheus metrics for
// the blogging API. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blooging"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// PostsCreatedTotal counts newly submitted posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts submitted for moderation.",
	},
)

// ModerationDecisionsTotal counts moderation outcomes.
// Label:
//   - decision: "accepted" or "rejected"
var ModerationDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moderation_decisions_total",
		Help:      "Total number of moderation decisions, by outcome.",
	},
	[]string{"decision"},
)

// LikesToggledTotal counts like toggles.
// Label:
//   - action: "like" or "unlike"
var LikesToggledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "likes_toggled_total",
		Help:      "Total number of like toggles, by resulting action.",
	},
	[]string{"action"},
)

// CommentsAddedTotal counts appended comments.
var CommentsAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_added_total",
		Help:      "Total number of comments appended to posts.",
	},
)

package internal

// Aggregate reduces queue statuses to fleet-wide counters in a single pass.
// Every non-active queue, NOT_FOUND included, counts as an error queue.
func Aggregate(queues []QueueStatus) Summary {
	summary := Summary{TotalQueues: len(queues)}

	for _, q := range queues {
		if !q.Active() {
			summary.ErrorQueues++
			continue
		}

		summary.ActiveQueues++
		summary.TotalMessages += q.MessagesVisible
		summary.TotalNotVisible += q.MessagesNotVisible
		summary.TotalDelayed += q.MessagesDelayed
		if q.MessagesVisible > 0 {
			summary.QueuesWithMessages++
		}
	}

	return summary
}

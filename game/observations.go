package game

// Observation reports a missile event observed at some point in space and
// time: either a scheduled ping or a detonation at a planet's surface.
// Self-destructions (reaching t_end unobserved) are not reported.
// Grounded on original_source's GrvxMissileObservation.
type Observation struct {
	// PlanetID is the planet that was hit, or >= the planet count for a
	// ping (no planet was hit).
	PlanetID int
	T        float64
	Lat, Lon float64
}

// observationNode is a node of a singly linked list kept sorted by
// ascending T, grounded on original_source's observations.h/observations.c.
type observationNode struct {
	obs  Observation
	next *observationNode
}

// insertObservation inserts obs into the list headed by head at the
// position that keeps the list sorted by ascending T.
func insertObservation(head *observationNode, obs Observation) *observationNode {
	node := &observationNode{obs: obs}
	if head == nil || head.obs.T > obs.T {
		node.next = head
		return node
	}
	ptr := head
	for ptr.next != nil && ptr.next.obs.T <= obs.T {
		ptr = ptr.next
	}
	node.next = ptr.next
	ptr.next = node
	return head
}

// popObservation removes and returns the head of the list, which holds
// the earliest-scheduled observation.
func popObservation(head *observationNode) (*Observation, *observationNode) {
	if head == nil {
		return nil, nil
	}
	obs := head.obs
	return &obs, head.next
}

// Package classify implements the model-selection heuristic for chat
// requests.
//
// Selection is a pure function of the message text: messages containing any
// coding-related keyword are routed to the coder-specialized model with
// deterministic-leaning generation parameters, all others to the general
// model. The caller supplies the concrete model identifiers so the heuristic
// stays independent of provider configuration.
package classify

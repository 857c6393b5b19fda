// Package services implements the driving port interfaces.
// Services contain the client-side business rules - input validation,
// blank-line filtering, outcome classification, the results fan-out -
// and orchestrate calls to the Backend driven port. They hold no UI
// state and are verifiable without any rendering surface.
package services

// Package naming derives observer names from a signal's own qualified name,
// so a signal can bind to one observer per context without enumerating them.
package naming

import "strings"

// Convention describes the suffix scheme tying signals to their observers.
// Under the Default convention the signal "billing.InvoiceCreatedSignal"
// resolves, for the context "Analytics", to "Analytics.InvoiceCreatedObserver".
type Convention struct {
	SignalSuffix   string
	ObserverSuffix string
}

var Default = Convention{SignalSuffix: "Signal", ObserverSuffix: "Observer"}

// ObserverNames returns the qualified observer name expected to exist in each
// context, in context order. It performs no existence check; binding
// validation is the registry's concern.
func (c Convention) ObserverNames(signalName string, contexts ...string) []string {
	bare := c.BareEventName(signalName)
	names := make([]string, 0, len(contexts))
	for _, context := range contexts {
		names = append(names, context+"."+bare+c.ObserverSuffix)
	}
	return names
}

// BareEventName strips the namespace and the signal suffix from a qualified
// signal name. A name without the suffix is returned as its local part.
func (c Convention) BareEventName(signalName string) string {
	local := signalName
	if i := strings.LastIndex(signalName, "."); i >= 0 {
		local = signalName[i+1:]
	}
	return strings.TrimSuffix(local, c.SignalSuffix)
}

// ObserverNames resolves observer names using the Default convention.
func ObserverNames(signalName string, contexts ...string) []string {
	return Default.ObserverNames(signalName, contexts...)
}

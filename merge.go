package config

// setAttribute merges one name/value/description triple onto the registry.
// Overwriting an existing attribute is the whole point of an override, so it
// logs at debug level and never errors. The Default metadata always tracks
// the value just written; Builtin keeps the first.
func (r *Registry) setAttribute(name string, value Value, desc string, prov Provenance) {
	previous := ""
	if existing, ok := r.attrs[name]; ok {
		previous = existing.Value.String()
		r.logger.Debug().Str("attribute", name).Msg("overwriting attribute")
	}

	r.logger.Debug().Str("attribute", name).Str("value", value.String()).Msg("setting attribute")

	attr, ok := r.attrs[name]
	if !ok {
		attr = &Attribute{Name: name, Builtin: value}
		r.attrs[name] = attr
		r.order = append(r.order, name)
	}
	attr.Value = value
	attr.Default = value
	if desc != "" {
		attr.Description = desc
	}

	trace, ok := r.traces[name]
	if !ok {
		trace = &Trace{Name: name}
		r.traces[name] = trace
	}
	trace.Writes = append(trace.Writes, prov)

	// Hooks observe load passes only; built-in registration stays quiet.
	if r.hooks.Enabled() && prov.Pass != "" {
		if err := r.hooks.Notify(LoadEvent{
			Kind:      EventAttributeSet,
			Pass:      prov.Pass,
			File:      prov.Source,
			Attribute: name,
			Previous:  previous,
			Value:     value.String(),
		}); err != nil {
			r.logger.Debug().Err(err).Str("attribute", name).Msg("load hook failed")
		}
	}
}

package plan

// RecordView is the structured before/after representation of one record,
// emitted only for records the ChangeSet touches.
type RecordView struct {
	Domain    string `yaml:"domain"`
	FieldType string `yaml:"fieldType"`
	SubDomain string `yaml:"subDomain"`
	Target    string `yaml:"target"`
	TTL       int    `yaml:"ttl"`
}

type Diff struct {
	Before []RecordView `yaml:"before"`
	After  []RecordView `yaml:"after"`
}

// Diff builds the preview artifact for the change set: deleted records appear
// only in Before, created ones only in After, updated ones in both. Unchanged
// records are excluded.
func (cs *ChangeSet) Diff() *Diff {
	d := &Diff{}
	for _, del := range cs.Deletes {
		d.Before = append(d.Before, viewOf(cs.Zone, del.Old.SubDomain, del.Old.FieldType, del.Old.Target, del.Old.TTL))
	}
	for _, upd := range cs.Updates {
		d.Before = append(d.Before, viewOf(cs.Zone, upd.Old.SubDomain, upd.Old.FieldType, upd.Old.Target, upd.Old.TTL))
		d.After = append(d.After, viewOf(cs.Zone, upd.Spec.SubDomain, upd.Spec.FieldType, upd.Spec.Target, upd.Spec.TTL))
	}
	for _, spec := range cs.Creates {
		d.After = append(d.After, viewOf(cs.Zone, spec.SubDomain, spec.FieldType, spec.Target, spec.TTL))
	}
	return d
}

func (d *Diff) IsEmpty() bool {
	return len(d.Before) == 0 && len(d.After) == 0
}

func viewOf(zone, subDomain, fieldType, target string, ttl int) RecordView {
	return RecordView{
		Domain:    zone,
		FieldType: fieldType,
		SubDomain: subDomain,
		Target:    target,
		TTL:       ttl,
	}
}

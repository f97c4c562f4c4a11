package session

// Reduce returns the state that results from applying a to s.
//
// Reduce never fails and never mutates its inputs: the returned state shares
// no slices or pointers with s or a. Unrecognized actions (including nil)
// return an unchanged copy of s.
func Reduce(s State, a Action) State {
	next := s.Clone()

	switch act := normalize(a).(type) {
	case SetUser:
		next.User = cloneUser(act.User)
	case SetFlashcards:
		next.Flashcards = cloneFlashcards(act.Flashcards)
	case SetCategory:
		next.CurrentCategory = act.Category
	case SetUsers:
		next.Users = cloneUsers(act.Users)
	case Logout:
		return InitialState()
	}

	return next
}

// normalize dereferences pointer actions so callers may dispatch either
// form. Nil pointers become a nil Action.
func normalize(a Action) Action {
	switch act := a.(type) {
	case *SetUser:
		if act != nil {
			return *act
		}
	case *SetFlashcards:
		if act != nil {
			return *act
		}
	case *SetCategory:
		if act != nil {
			return *act
		}
	case *SetUsers:
		if act != nil {
			return *act
		}
	case *Logout:
		if act != nil {
			return *act
		}
	default:
		return a
	}
	return nil
}

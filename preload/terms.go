package preload

// DefaultTerms returns the common React terms preloaded into the seed set.
func DefaultTerms() []string {
	return []string{
		"useState",
		"useEffect",
		"useContext",
		"useReducer",
		"useCallback",
		"useMemo",
		"useRef",
		"useLayoutEffect",
		"useImperativeHandle",
		"useDebugValue",
		"memo",
		"lazy",
		"Suspense",
		"React.memo",
		"React.lazy",
		"React.Fragment",
		"React.StrictMode",
		"React.Children",
		"React.cloneElement",
		"React.createElement",
		"React.createRef",
		"React.forwardRef",
		"React.isValidElement",
		"useState hook",
		"useEffect hook",
		"useContext hook",
		"useReducer hook",
		"props",
		"state",
		"context",
		"lifecycle methods",
		"componentDidMount",
		"componentDidUpdate",
		"componentWillUnmount",
		"render",
		"virtual DOM",
		"JSX",
		"React Router",
		"Link",
		"NavLink",
		"Route",
		"Routes",
		"Redux",
		"Provider",
		"connect",
		"useSelector",
		"useDispatch",
		"styled-components",
		"axios",
		"fetch",
		"key prop",
		"controlled component",
		"uncontrolled component",
	}
}

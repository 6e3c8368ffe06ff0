package models

func (e BuildingEmployee) EntityID() EmployeeID       { return e.ID }
func (e *BuildingEmployee) SetEntityID(id EmployeeID) { e.ID = id }

func (l AccessLog) EntityID() AccessLogID       { return l.ID }
func (l *AccessLog) SetEntityID(id AccessLogID) { l.ID = id }

func (s BuildingService) EntityID() ServiceID       { return s.ID }
func (s *BuildingService) SetEntityID(id ServiceID) { s.ID = id }

func (c Company) EntityID() CompanyID       { return c.ID }
func (c *Company) SetEntityID(id CompanyID) { c.ID = id }

func (c CompanyEmployee) EntityID() CompanyEmployeeID       { return c.ID }
func (c *CompanyEmployee) SetEntityID(id CompanyEmployeeID) { c.ID = id }

func (u CompanyServiceUsage) EntityID() UsageID       { return u.ID }
func (u *CompanyServiceUsage) SetEntityID(id UsageID) { u.ID = id }
